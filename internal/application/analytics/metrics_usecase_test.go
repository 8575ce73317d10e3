package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiorellalancissi/Vittorea/internal/application/analytics"
	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/infrastructure/memory"
)

func buildMetricsUC(t *testing.T) (*analytics.MetricsUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore(30)
	uc := analytics.NewMetricsUseCase(
		store.Products, store.Clients, store.Movements, store.Orders, store.Feedbacks, store.Settings,
	)
	return uc, store
}

func seedOrder(t *testing.T, store *memory.Store, productID, qty int, unit, cost int64, date time.Time) {
	t.Helper()
	require.NoError(t, store.Orders.Create(&entity.Order{
		ClientID:  1,
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: decimal.NewFromInt(unit),
		CostPrice: decimal.NewFromInt(cost),
		Date:      date,
		Status:    entity.StatusPendiente,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumen general
// ──────────────────────────────────────────────────────────────────────────────

func TestStats_StockValuacionYClientes(t *testing.T) {
	uc, store := buildMetricsUC(t)

	require.NoError(t, store.Products.Create(&entity.Product{
		Name: "A", CostPrice: decimal.NewFromInt(100), SalePrice: decimal.NewFromInt(140), Stock: 2,
	}))
	require.NoError(t, store.Products.Create(&entity.Product{
		Name: "B", CostPrice: decimal.NewFromInt(200), SalePrice: decimal.NewFromInt(280), Stock: 1,
	}))
	require.NoError(t, store.Products.Create(&entity.Product{
		Name: "C", CostPrice: decimal.NewFromInt(300), SalePrice: decimal.NewFromInt(420), Stock: 0,
	}))
	require.NoError(t, store.Clients.Create(&entity.Client{Name: "Lucía", Phone: "1"}))
	require.NoError(t, store.Clients.Create(&entity.Client{Name: "Marta", Phone: "2"}))

	now := time.Now()
	seedOrder(t, store, 1, 1, 140, 100, now)
	seedOrder(t, store, 1, 1, 140, 100, now) // mismo cliente, recurrente

	// Egresos pendientes de confirmar y de entregar
	require.NoError(t, store.Movements.Create(&entity.Movement{
		ProductID: 1, Type: entity.MovementTypeEgreso, Quantity: 1, Status: entity.StatusPendiente, Date: now,
	}))
	require.NoError(t, store.Movements.Create(&entity.Movement{
		ProductID: 1, Type: entity.MovementTypeEgreso, Quantity: 1, Status: entity.StatusConfirmado, Date: now,
	}))

	stats, err := uc.Stats()
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 3, stats.TotalStock)
	assert.Equal(t, 1, stats.LowStockProducts, "solo B tiene exactamente 1 unidad")
	assert.Equal(t, 1, stats.OutOfStockProducts)
	assert.True(t, stats.TotalCostValue.Equal(decimal.NewFromInt(400)), "2*100 + 1*200 + 0*300")
	assert.True(t, stats.TotalSaleValue.Equal(decimal.NewFromInt(560)))
	assert.Equal(t, 2, stats.TotalClients)
	assert.Equal(t, 1, stats.ClientsWithOrders)
	assert.Equal(t, 1, stats.RepeatClients)
	assert.Equal(t, 1, stats.PendingTransfers)
	assert.Equal(t, 1, stats.PendingDeliveries)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas por mes y ranking
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesByMonth_AgrupaYOrdena(t *testing.T) {
	uc, store := buildMetricsUC(t)

	january := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	february := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	seedOrder(t, store, 1, 2, 140, 100, february)
	seedOrder(t, store, 1, 1, 140, 100, february)
	seedOrder(t, store, 1, 1, 140, 100, january)

	monthly, err := uc.SalesByMonth()
	require.NoError(t, err)
	require.Len(t, monthly, 2)

	assert.Equal(t, "2026-01", monthly[0].Month, "orden ascendente por mes")
	assert.Equal(t, "2026-02", monthly[1].Month)
	assert.Equal(t, 2, monthly[1].Transactions)
	assert.Equal(t, 3, monthly[1].UnitsSold)
	assert.True(t, monthly[1].TotalSales.Equal(decimal.NewFromInt(420)))
	assert.True(t, monthly[1].TotalProfit.Equal(decimal.NewFromInt(120)))
}

func TestProductSalesRanking_TopYBottom(t *testing.T) {
	uc, store := buildMetricsUC(t)

	require.NoError(t, store.Products.Create(&entity.Product{Name: "A", Stock: 1,
		CostPrice: decimal.NewFromInt(100), SalePrice: decimal.NewFromInt(140)}))
	require.NoError(t, store.Products.Create(&entity.Product{Name: "B", Stock: 1,
		CostPrice: decimal.NewFromInt(100), SalePrice: decimal.NewFromInt(140)}))

	now := time.Now()
	seedOrder(t, store, 1, 3, 140, 100, now)
	seedOrder(t, store, 2, 5, 140, 100, now)

	ranking, err := uc.ProductSalesRanking()
	require.NoError(t, err)
	require.Len(t, ranking.All, 2)
	require.NotNil(t, ranking.Top)
	require.NotNil(t, ranking.Bottom)

	assert.Equal(t, "B", ranking.Top.ProductName, "B vendió 5 unidades contra 3 de A")
	assert.Equal(t, 5, ranking.Top.UnitsSold)
	assert.Equal(t, "A", ranking.Bottom.ProductName)
}

func TestProductSalesRanking_SinVentas(t *testing.T) {
	uc, _ := buildMetricsUC(t)

	ranking, err := uc.ProductSalesRanking()
	require.NoError(t, err)
	assert.Empty(t, ranking.All)
	assert.Nil(t, ranking.Top)
	assert.Nil(t, ranking.Bottom)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rotación y finanzas
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryRotation(t *testing.T) {
	uc, store := buildMetricsUC(t)

	// Sin stock: rotación 0, sin división por cero
	rotation, err := uc.InventoryRotation()
	require.NoError(t, err)
	assert.True(t, rotation.IsZero())

	require.NoError(t, store.Products.Create(&entity.Product{Name: "A", Stock: 4,
		CostPrice: decimal.NewFromInt(100), SalePrice: decimal.NewFromInt(140)}))
	seedOrder(t, store, 1, 3, 140, 100, time.Now())

	rotation, err = uc.InventoryRotation()
	require.NoError(t, err)
	assert.True(t, rotation.Equal(decimal.NewFromFloat(0.75)), "3 vendidas / 4 en stock")
}

func TestFinancialMetrics_MesCorrienteYReinversion(t *testing.T) {
	uc, store := buildMetricsUC(t)

	now := time.Now()
	lastYear := now.AddDate(-1, 0, 0)
	seedOrder(t, store, 1, 1, 140, 100, lastYear) // histórico
	seedOrder(t, store, 1, 2, 140, 100, now)      // mes corriente

	fin, err := uc.FinancialMetrics()
	require.NoError(t, err)

	assert.True(t, fin.TotalRevenue.Equal(decimal.NewFromInt(420)))
	assert.True(t, fin.TotalProfit.Equal(decimal.NewFromInt(120)))
	assert.True(t, fin.MonthlyRevenue.Equal(decimal.NewFromInt(280)), "solo el pedido del mes corriente")
	assert.True(t, fin.MonthlyProfit.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, 30, fin.ReinvestmentPercent)
	assert.True(t, fin.MonthlyReinvestment.Equal(decimal.NewFromInt(24)), "30% de 80")

	// margen: 120/420*100 = 28.571... → 28.6
	assert.True(t, fin.ProfitMargin.Equal(decimal.NewFromFloat(28.6)), "obtenido %s", fin.ProfitMargin)
}

func TestSetReinvestmentPercent_Clamp(t *testing.T) {
	uc, _ := buildMetricsUC(t)

	assert.Equal(t, 100, uc.SetReinvestmentPercent(150))
	assert.Equal(t, 100, uc.ReinvestmentPercent())

	assert.Equal(t, 0, uc.SetReinvestmentPercent(-10))
	assert.Equal(t, 0, uc.ReinvestmentPercent())

	assert.Equal(t, 45, uc.SetReinvestmentPercent(45))
	assert.Equal(t, 45, uc.ReinvestmentPercent())
}

// ──────────────────────────────────────────────────────────────────────────────
// Satisfacción
// ──────────────────────────────────────────────────────────────────────────────

func TestSatisfactionMetrics(t *testing.T) {
	uc, store := buildMetricsUC(t)

	// Vacío: tasas en 0, sin división por cero
	sat, err := uc.SatisfactionMetrics()
	require.NoError(t, err)
	assert.Equal(t, 0, sat.Total)
	assert.True(t, sat.SatisfactionRate.IsZero())

	now := time.Now()
	feedbacks := []*entity.Feedback{
		{ClientID: 1, Satisfaction: entity.SatisfactionPositivo, WouldRepurchase: true, Date: now},
		{ClientID: 1, Satisfaction: entity.SatisfactionPositivo, WouldRepurchase: true, Date: now},
		{ClientID: 2, Satisfaction: entity.SatisfactionNegativo, WouldRepurchase: false, Date: now},
	}
	for _, f := range feedbacks {
		require.NoError(t, store.Feedbacks.Create(f))
	}

	sat, err = uc.SatisfactionMetrics()
	require.NoError(t, err)
	assert.Equal(t, 3, sat.Total)
	assert.Equal(t, 2, sat.Positive)
	assert.Equal(t, 1, sat.Negative)
	assert.Equal(t, 2, sat.WouldRepurchase)
	// 2/3*100 = 66.666... → 66.7
	assert.True(t, sat.SatisfactionRate.Equal(decimal.NewFromFloat(66.7)), "obtenido %s", sat.SatisfactionRate)
	assert.True(t, sat.RepurchaseRate.Equal(decimal.NewFromFloat(66.7)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildReport_InstantaneaCompleta(t *testing.T) {
	uc, store := buildMetricsUC(t)

	require.NoError(t, store.Products.Create(&entity.Product{Name: "A", Stock: 2,
		CostPrice: decimal.NewFromInt(100), SalePrice: decimal.NewFromInt(140)}))
	seedOrder(t, store, 1, 1, 140, 100, time.Now())

	report, err := uc.BuildReport()
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, 1, report.Stats.TotalProducts)
	assert.Len(t, report.Monthly, 1)
	assert.NotNil(t, report.Ranking.Top)
	assert.True(t, report.Rotation.Equal(decimal.NewFromFloat(0.5)))
}
