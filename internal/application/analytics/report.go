package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
)

// ReportData instantánea completa del negocio para el reporte descargable.
type ReportData struct {
	GeneratedAt  time.Time
	Stats        dto.StatsDTO
	Monthly      []dto.MonthlySalesDTO
	Ranking      dto.RankingDTO
	Financial    dto.FinancialMetricsDTO
	Satisfaction dto.SatisfactionMetricsDTO
	Rotation     decimal.Decimal
}

// ReportGenerator puerto de salida para renderizar el reporte.
// Cualquier adaptador (PDF, mock de test) debe implementar esta interfaz;
// la capa de aplicación solo conoce este contrato.
type ReportGenerator interface {
	GenerateBusinessReport(ctx context.Context, data ReportData) ([]byte, error)
}

// BuildReport arma la instantánea con todas las métricas vigentes.
func (uc *MetricsUseCase) BuildReport() (*ReportData, error) {
	stats, err := uc.Stats()
	if err != nil {
		return nil, err
	}
	monthly, err := uc.SalesByMonth()
	if err != nil {
		return nil, err
	}
	ranking, err := uc.ProductSalesRanking()
	if err != nil {
		return nil, err
	}
	financial, err := uc.FinancialMetrics()
	if err != nil {
		return nil, err
	}
	satisfaction, err := uc.SatisfactionMetrics()
	if err != nil {
		return nil, err
	}
	rotation, err := uc.InventoryRotation()
	if err != nil {
		return nil, err
	}
	return &ReportData{
		GeneratedAt:  time.Now(),
		Stats:        *stats,
		Monthly:      monthly,
		Ranking:      *ranking,
		Financial:    *financial,
		Satisfaction: *satisfaction,
		Rotation:     rotation,
	}, nil
}
