package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
	"github.com/fiorellalancissi/Vittorea/internal/application/usecase"
	"github.com/fiorellalancissi/Vittorea/internal/domain"
	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/infrastructure/memory"
)

func buildFeedbackUC(t *testing.T) *usecase.FeedbackUseCase {
	t.Helper()
	store := memory.NewStore(30)
	return usecase.NewFeedbackUseCase(store.Feedbacks)
}

func TestFeedbackCreate_ValidaSatisfaccion(t *testing.T) {
	uc := buildFeedbackUC(t)

	for _, s := range []string{entity.SatisfactionPositivo, entity.SatisfactionNeutro, entity.SatisfactionNegativo} {
		out, err := uc.Create(dto.CreateFeedbackRequest{ClientID: 1, Satisfaction: s})
		require.NoError(t, err)
		assert.Equal(t, s, out.Satisfaction)
		assert.False(t, out.Date.IsZero(), "fecha vacía se completa con ahora")
	}

	_, err := uc.Create(dto.CreateFeedbackRequest{ClientID: 1, Satisfaction: "contentísimo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFeedbackListByClient_MasRecientePrimero(t *testing.T) {
	uc := buildFeedbackUC(t)

	older := time.Now().Add(-48 * time.Hour)
	newer := time.Now()
	_, err := uc.Create(dto.CreateFeedbackRequest{ClientID: 7, Satisfaction: entity.SatisfactionPositivo, Date: &older})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateFeedbackRequest{ClientID: 7, Satisfaction: entity.SatisfactionNegativo, Date: &newer})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateFeedbackRequest{ClientID: 99, Satisfaction: entity.SatisfactionNeutro})
	require.NoError(t, err)

	list, err := uc.ListByClient(7)
	require.NoError(t, err)
	require.Len(t, list, 2, "solo el feedback del cliente pedido")
	assert.Equal(t, entity.SatisfactionNegativo, list[0].Satisfaction, "el más reciente primero")
}

func TestFeedbackUpdate_Inexistente(t *testing.T) {
	uc := buildFeedbackUC(t)

	out, err := uc.Update(42, dto.UpdateFeedbackRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}
