package usecase

import (
	"sort"
	"time"

	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
	"github.com/fiorellalancissi/Vittorea/internal/domain"
	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/domain/repository"
)

// FeedbackUseCase registro de feedback post-venta (información interna,
// gestionada desde la ficha del cliente).
type FeedbackUseCase struct {
	repo repository.FeedbackRepository
}

// NewFeedbackUseCase construye el caso de uso.
func NewFeedbackUseCase(repo repository.FeedbackRepository) *FeedbackUseCase {
	return &FeedbackUseCase{repo: repo}
}

// Create registra un feedback. Fecha vacía se completa con ahora.
func (uc *FeedbackUseCase) Create(in dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	switch in.Satisfaction {
	case entity.SatisfactionPositivo, entity.SatisfactionNeutro, entity.SatisfactionNegativo:
	default:
		return nil, domain.ErrInvalidInput
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	f := &entity.Feedback{
		ClientID:           in.ClientID,
		OrderID:            in.OrderID,
		ProductID:          in.ProductID,
		Satisfaction:       in.Satisfaction,
		PerceivedDuration:  in.PerceivedDuration,
		PerceivedIntensity: in.PerceivedIntensity,
		WouldRepurchase:    in.WouldRepurchase,
		Comment:            in.Comment,
		Date:               date,
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return toFeedbackResponse(f), nil
}

// Update actualiza los campos indicados. Devuelve nil, nil si no existe.
func (uc *FeedbackUseCase) Update(id int, in dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil || f == nil {
		return nil, err
	}
	if in.Satisfaction != nil {
		f.Satisfaction = *in.Satisfaction
	}
	if in.PerceivedDuration != nil {
		f.PerceivedDuration = *in.PerceivedDuration
	}
	if in.PerceivedIntensity != nil {
		f.PerceivedIntensity = *in.PerceivedIntensity
	}
	if in.WouldRepurchase != nil {
		f.WouldRepurchase = *in.WouldRepurchase
	}
	if in.Comment != nil {
		f.Comment = *in.Comment
	}
	if err := uc.repo.Update(f); err != nil {
		return nil, err
	}
	return toFeedbackResponse(f), nil
}

// Delete elimina un feedback.
func (uc *FeedbackUseCase) Delete(id int) error {
	return uc.repo.Delete(id)
}

// List devuelve todo el feedback, más reciente primero.
func (uc *FeedbackUseCase) List() ([]dto.FeedbackResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return sortedFeedback(list), nil
}

// ListByClient feedback de un cliente, más reciente primero.
func (uc *FeedbackUseCase) ListByClient(clientID int) ([]dto.FeedbackResponse, error) {
	list, err := uc.repo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return sortedFeedback(list), nil
}

// ListByProduct feedback de un producto, más reciente primero.
func (uc *FeedbackUseCase) ListByProduct(productID int) ([]dto.FeedbackResponse, error) {
	list, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return sortedFeedback(list), nil
}

func sortedFeedback(list []*entity.Feedback) []dto.FeedbackResponse {
	out := make([]dto.FeedbackResponse, 0, len(list))
	for _, f := range list {
		out = append(out, *toFeedbackResponse(f))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func toFeedbackResponse(f *entity.Feedback) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{
		ID:                 f.ID,
		ClientID:           f.ClientID,
		OrderID:            f.OrderID,
		ProductID:          f.ProductID,
		Satisfaction:       f.Satisfaction,
		PerceivedDuration:  f.PerceivedDuration,
		PerceivedIntensity: f.PerceivedIntensity,
		WouldRepurchase:    f.WouldRepurchase,
		Comment:            f.Comment,
		Date:               f.Date,
	}
}
