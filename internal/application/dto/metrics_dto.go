package dto

import "github.com/shopspring/decimal"

// StatsDTO resumen general de stock, clientes y flujo de ventas pendiente.
type StatsDTO struct {
	TotalProducts      int             `json:"total_products"`
	TotalStock         int             `json:"total_stock"`
	LowStockProducts   int             `json:"low_stock_products"`    // exactamente 1 unidad
	OutOfStockProducts int             `json:"out_of_stock_products"` // 0 unidades
	TotalCostValue     decimal.Decimal `json:"total_cost_value"`
	TotalSaleValue     decimal.Decimal `json:"total_sale_value"`
	TotalClients       int             `json:"total_clients"`
	ClientsWithOrders  int             `json:"clients_with_orders"`
	RepeatClients      int             `json:"repeat_clients"`
	PendingTransfers   int             `json:"pending_transfers"`
	PendingDeliveries  int             `json:"pending_deliveries"`
}

// MonthlySalesDTO agregado de ventas por mes calendario ("2006-01").
type MonthlySalesDTO struct {
	Month        string          `json:"month"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	UnitsSold    int             `json:"units_sold"`
	Transactions int             `json:"transactions"`
}

// ProductSalesDTO acumulado de ventas de un producto.
type ProductSalesDTO struct {
	ProductID    int             `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image,omitempty"`
	UnitsSold    int             `json:"units_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
}

// RankingDTO ranking de productos por unidades vendidas (descendente).
type RankingDTO struct {
	All    []ProductSalesDTO `json:"all"`
	Top    *ProductSalesDTO  `json:"top"`
	Bottom *ProductSalesDTO  `json:"bottom"`
}

// RotationDTO ratio de rotación de inventario (unidades vendidas / stock actual).
type RotationDTO struct {
	Rotation decimal.Decimal `json:"rotation"`
}

// FinancialMetricsDTO métricas financieras de vida y del mes en curso.
type FinancialMetricsDTO struct {
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalCost           decimal.Decimal `json:"total_cost"`
	TotalProfit         decimal.Decimal `json:"total_profit"`
	MonthlyRevenue      decimal.Decimal `json:"monthly_revenue"`
	MonthlyProfit       decimal.Decimal `json:"monthly_profit"`
	MonthlyReinvestment decimal.Decimal `json:"monthly_reinvestment"`
	ReinvestmentPercent int             `json:"reinvestment_percent"`
	ProfitMargin        decimal.Decimal `json:"profit_margin"` // % sobre ingresos, 1 decimal
}

// SatisfactionMetricsDTO métricas agregadas del feedback post-venta.
// Las tasas son porcentajes con 1 decimal; 0 si no hay feedback.
type SatisfactionMetricsDTO struct {
	Total            int             `json:"total"`
	Positive         int             `json:"positive"`
	Neutral          int             `json:"neutral"`
	Negative         int             `json:"negative"`
	WouldRepurchase  int             `json:"would_repurchase"`
	SatisfactionRate decimal.Decimal `json:"satisfaction_rate"`
	RepurchaseRate   decimal.Decimal `json:"repurchase_rate"`
}

// ReinvestmentRequest actualización del porcentaje de reinversión (se aplica clamp 0-100).
type ReinvestmentRequest struct {
	Percent int `json:"percent"`
}

// PaymentPreferenceRequest entrada del storefront para generar el checkout.
type PaymentPreferenceRequest struct {
	OrderID int `json:"order_id"`
}

// PaymentPreferenceResponse preferencia creada en el proveedor de pagos.
type PaymentPreferenceResponse struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}
