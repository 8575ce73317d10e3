// Package analytics calcula las métricas derivadas del negocio.
//
// Todas las métricas son agregaciones puras recomputadas en cada lectura
// sobre las colecciones actuales: sin caché ni mantenimiento incremental.
// A la escala de un negocio unipersonal el recálculo completo es barato.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// MetricsUseCase métricas del dashboard del back-office.
type MetricsUseCase struct {
	productRepo  repository.ProductRepository
	clientRepo   repository.ClientRepository
	movementRepo repository.MovementRepository
	orderRepo    repository.OrderRepository
	feedbackRepo repository.FeedbackRepository
	settings     repository.SettingsRepository
}

// NewMetricsUseCase construye el caso de uso.
func NewMetricsUseCase(
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	movementRepo repository.MovementRepository,
	orderRepo repository.OrderRepository,
	feedbackRepo repository.FeedbackRepository,
	settings repository.SettingsRepository,
) *MetricsUseCase {
	return &MetricsUseCase{
		productRepo:  productRepo,
		clientRepo:   clientRepo,
		movementRepo: movementRepo,
		orderRepo:    orderRepo,
		feedbackRepo: feedbackRepo,
		settings:     settings,
	}
}

// Stats resumen general: stock, valuación, clientes y ventas pendientes.
func (uc *MetricsUseCase) Stats() (*dto.StatsDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	clients, err := uc.clientRepo.List()
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}

	out := &dto.StatsDTO{
		TotalProducts:  len(products),
		TotalClients:   len(clients),
		TotalCostValue: decimal.Zero,
		TotalSaleValue: decimal.Zero,
	}

	for _, p := range products {
		out.TotalStock += p.Stock
		switch {
		case p.Stock == 0:
			out.OutOfStockProducts++
		case p.Stock == 1:
			out.LowStockProducts++
		}
		qty := decimal.NewFromInt(int64(p.Stock))
		out.TotalCostValue = out.TotalCostValue.Add(p.CostPrice.Mul(qty))
		out.TotalSaleValue = out.TotalSaleValue.Add(p.SalePrice.Mul(qty))
	}

	ordersPerClient := make(map[int]int)
	for _, o := range orders {
		ordersPerClient[o.ClientID]++
	}
	out.ClientsWithOrders = len(ordersPerClient)
	for _, n := range ordersPerClient {
		if n > 1 {
			out.RepeatClients++
		}
	}

	for _, m := range movements {
		if m.Type != entity.MovementTypeEgreso {
			continue
		}
		switch m.Status {
		case entity.StatusPendiente:
			out.PendingTransfers++
		case entity.StatusConfirmado:
			out.PendingDeliveries++
		}
	}

	return out, nil
}

// SalesByMonth agrupa las ventas por mes calendario del pedido,
// ordenado ascendente por clave "2006-01".
func (uc *MetricsUseCase) SalesByMonth() ([]dto.MonthlySalesDTO, error) {
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]*dto.MonthlySalesDTO)
	for _, o := range orders {
		key := o.Date.Format("2006-01")
		m, ok := byMonth[key]
		if !ok {
			m = &dto.MonthlySalesDTO{
				Month:       key,
				TotalSales:  decimal.Zero,
				TotalCost:   decimal.Zero,
				TotalProfit: decimal.Zero,
			}
			byMonth[key] = m
		}
		total := o.Total()
		cost := o.CostPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
		m.TotalSales = m.TotalSales.Add(total)
		m.TotalCost = m.TotalCost.Add(cost)
		m.TotalProfit = m.TotalProfit.Add(total.Sub(cost))
		m.UnitsSold += o.Quantity
		m.Transactions++
	}

	out := make([]dto.MonthlySalesDTO, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

// ProductSalesRanking agrupa ventas por producto y ordena descendente por
// unidades vendidas. Productos eliminados aparecen como "Producto eliminado".
func (uc *MetricsUseCase) ProductSalesRanking() (*dto.RankingDTO, error) {
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}

	byProduct := make(map[int]*dto.ProductSalesDTO)
	for _, o := range orders {
		ps, ok := byProduct[o.ProductID]
		if !ok {
			name := "Producto eliminado"
			image := ""
			if p, _ := uc.productRepo.GetByID(o.ProductID); p != nil {
				name = p.Name
				image = p.Image
			}
			ps = &dto.ProductSalesDTO{
				ProductID:    o.ProductID,
				ProductName:  name,
				ProductImage: image,
				TotalRevenue: decimal.Zero,
				TotalProfit:  decimal.Zero,
			}
			byProduct[o.ProductID] = ps
		}
		ps.UnitsSold += o.Quantity
		ps.TotalRevenue = ps.TotalRevenue.Add(o.Total())
		ps.TotalProfit = ps.TotalProfit.Add(o.Profit())
	}

	all := make([]dto.ProductSalesDTO, 0, len(byProduct))
	for _, ps := range byProduct {
		all = append(all, *ps)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].UnitsSold > all[j].UnitsSold })

	out := &dto.RankingDTO{All: all}
	if len(all) > 0 {
		out.Top = &all[0]
		out.Bottom = &all[len(all)-1]
	}
	return out, nil
}

// InventoryRotation unidades vendidas históricas sobre stock actual,
// redondeado a 2 decimales. 0 si no hay stock.
func (uc *MetricsUseCase) InventoryRotation() (decimal.Decimal, error) {
	orders, err := uc.orderRepo.List()
	if err != nil {
		return decimal.Zero, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return decimal.Zero, err
	}

	unitsSold := 0
	for _, o := range orders {
		unitsSold += o.Quantity
	}
	stock := 0
	for _, p := range products {
		stock += p.Stock
	}
	if stock == 0 {
		return decimal.Zero, nil
	}
	return decimal.NewFromInt(int64(unitsSold)).
		Div(decimal.NewFromInt(int64(stock))).
		Round(2), nil
}

// FinancialMetrics métricas de vida del negocio más el mes en curso.
// La reinversión sugerida aplica el porcentaje configurado (clamp 0-100)
// sobre la utilidad del mes corriente.
func (uc *MetricsUseCase) FinancialMetrics() (*dto.FinancialMetricsDTO, error) {
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	monthly, err := uc.SalesByMonth()
	if err != nil {
		return nil, err
	}

	totalRevenue := decimal.Zero
	totalCost := decimal.Zero
	for _, o := range orders {
		totalRevenue = totalRevenue.Add(o.Total())
		totalCost = totalCost.Add(o.CostPrice.Mul(decimal.NewFromInt(int64(o.Quantity))))
	}
	totalProfit := totalRevenue.Sub(totalCost)

	currentKey := time.Now().Format("2006-01")
	monthlyRevenue := decimal.Zero
	monthlyProfit := decimal.Zero
	for _, m := range monthly {
		if m.Month == currentKey {
			monthlyRevenue = m.TotalSales
			monthlyProfit = m.TotalProfit
			break
		}
	}

	percent := uc.ReinvestmentPercent()
	reinvestment := monthlyProfit.
		Mul(decimal.NewFromInt(int64(percent))).
		Div(hundred).
		Round(0)

	margin := decimal.Zero
	if totalRevenue.IsPositive() {
		margin = totalProfit.Div(totalRevenue).Mul(hundred).Round(1)
	}

	return &dto.FinancialMetricsDTO{
		TotalRevenue:        totalRevenue,
		TotalCost:           totalCost,
		TotalProfit:         totalProfit,
		MonthlyRevenue:      monthlyRevenue,
		MonthlyProfit:       monthlyProfit,
		MonthlyReinvestment: reinvestment,
		ReinvestmentPercent: percent,
		ProfitMargin:        margin,
	}, nil
}

// SatisfactionMetrics agregados del feedback post-venta.
// Tasas como porcentaje con 1 decimal; 0 sin feedback.
func (uc *MetricsUseCase) SatisfactionMetrics() (*dto.SatisfactionMetricsDTO, error) {
	feedbacks, err := uc.feedbackRepo.List()
	if err != nil {
		return nil, err
	}

	out := &dto.SatisfactionMetricsDTO{
		Total:            len(feedbacks),
		SatisfactionRate: decimal.Zero,
		RepurchaseRate:   decimal.Zero,
	}
	for _, f := range feedbacks {
		switch f.Satisfaction {
		case entity.SatisfactionPositivo:
			out.Positive++
		case entity.SatisfactionNeutro:
			out.Neutral++
		case entity.SatisfactionNegativo:
			out.Negative++
		}
		if f.WouldRepurchase {
			out.WouldRepurchase++
		}
	}
	if out.Total > 0 {
		total := decimal.NewFromInt(int64(out.Total))
		out.SatisfactionRate = decimal.NewFromInt(int64(out.Positive)).Div(total).Mul(hundred).Round(1)
		out.RepurchaseRate = decimal.NewFromInt(int64(out.WouldRepurchase)).Div(total).Mul(hundred).Round(1)
	}
	return out, nil
}

// ReinvestmentPercent porcentaje vigente, siempre dentro de 0-100.
func (uc *MetricsUseCase) ReinvestmentPercent() int {
	return clampPercent(uc.settings.ReinvestmentPercent())
}

// SetReinvestmentPercent guarda el porcentaje con clamp 0-100.
func (uc *MetricsUseCase) SetReinvestmentPercent(percent int) int {
	p := clampPercent(percent)
	uc.settings.SetReinvestmentPercent(p)
	return p
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
