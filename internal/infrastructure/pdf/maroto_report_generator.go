// Package pdf implementa el reporte mensual del negocio en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: stock, valuación, clientes, pendientes             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FINANZAS: totales de vida, mes en curso, reinversión        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ventas por mes                                       │
//	│  TABLA: ranking de productos                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SATISFACCIÓN: conteos y tasas del feedback                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/fiorellalancissi/Vittorea/internal/application/analytics"
	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 90, Green: 62, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa analytics.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

var _ analytics.ReportGenerator = (*MarotoReportGenerator)(nil)

// GenerateBusinessReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateBusinessReport(
	_ context.Context,
	data analytics.ReportData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte del negocio", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statsRows(data.Stats)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(financialRows(data.Financial, data.Rotation)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("VENTAS POR MES"))
	m.AddRows(monthlyHeaderRow())
	for _, r := range monthlyRows(data.Monthly) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitle("RANKING DE PRODUCTOS"))
	m.AddRows(rankingHeaderRow())
	for _, r := range rankingRows(data.Ranking.All) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(satisfactionRows(data.Satisfaction)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data analytics.ReportData) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DEL NEGOCIO", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Resumen de inventario, ventas y clientes", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

// statsRows: resumen de stock y clientes en pares etiqueta/valor.
func statsRows(s dto.StatsDTO) []core.Row {
	return []core.Row{
		sectionTitle("RESUMEN GENERAL"),
		kvRow(
			"Productos", fmt.Sprintf("%d", s.TotalProducts),
			"Stock total", fmt.Sprintf("%d unidades", s.TotalStock),
			"Últimas unidades", fmt.Sprintf("%d", s.LowStockProducts),
		),
		kvRow(
			"Sin stock", fmt.Sprintf("%d", s.OutOfStockProducts),
			"Valuación costo", "$"+s.TotalCostValue.StringFixed(0),
			"Valuación venta", "$"+s.TotalSaleValue.StringFixed(0),
		),
		kvRow(
			"Clientes", fmt.Sprintf("%d", s.TotalClients),
			"Con compras", fmt.Sprintf("%d", s.ClientsWithOrders),
			"Recurrentes", fmt.Sprintf("%d", s.RepeatClients),
		),
		kvRow(
			"Transf. pendientes", fmt.Sprintf("%d", s.PendingTransfers),
			"Entregas pendientes", fmt.Sprintf("%d", s.PendingDeliveries),
			"", "",
		),
	}
}

// financialRows: totales de vida y del mes en curso.
func financialRows(f dto.FinancialMetricsDTO, rotation decimal.Decimal) []core.Row {
	return []core.Row{
		sectionTitle("FINANZAS"),
		kvRow(
			"Ingresos totales", "$"+f.TotalRevenue.StringFixed(0),
			"Costos totales", "$"+f.TotalCost.StringFixed(0),
			"Utilidad total", "$"+f.TotalProfit.StringFixed(0),
		),
		kvRow(
			"Ingresos del mes", "$"+f.MonthlyRevenue.StringFixed(0),
			"Utilidad del mes", "$"+f.MonthlyProfit.StringFixed(0),
			"Margen", f.ProfitMargin.StringFixed(1)+"%",
		),
		kvRow(
			fmt.Sprintf("Reinversión (%d%%)", f.ReinvestmentPercent), "$"+f.MonthlyReinvestment.StringFixed(0),
			"Rotación de inventario", rotation.StringFixed(2),
			"", "",
		),
	}
}

func monthlyHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Mes", 2, align.Left),
		h("Ventas", 3, align.Right),
		h("Utilidad", 3, align.Right),
		h("Unidades", 2, align.Right),
		h("Pedidos", 2, align.Right),
	)
}

func monthlyRows(monthly []dto.MonthlySalesDTO) []core.Row {
	result := make([]core.Row, 0, len(monthly))
	for _, m := range monthly {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(m.Month, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New("$"+m.TotalSales.StringFixed(0), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New("$"+m.TotalProfit.StringFixed(0), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", m.UnitsSold), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", m.Transactions), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}

func rankingHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Producto", 6, align.Left),
		h("Unidades", 2, align.Right),
		h("Ingresos", 2, align.Right),
		h("Utilidad", 2, align.Right),
	)
}

func rankingRows(products []dto.ProductSalesDTO) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(p.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", p.UnitsSold), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New("$"+p.TotalRevenue.StringFixed(0), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New("$"+p.TotalProfit.StringFixed(0), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}

// satisfactionRows: conteos y tasas del feedback post-venta.
func satisfactionRows(s dto.SatisfactionMetricsDTO) []core.Row {
	return []core.Row{
		sectionTitle("SATISFACCIÓN"),
		kvRow(
			"Respuestas", fmt.Sprintf("%d", s.Total),
			"Positivas", fmt.Sprintf("%d", s.Positive),
			"Negativas", fmt.Sprintf("%d", s.Negative),
		),
		kvRow(
			"Tasa de satisfacción", s.SatisfactionRate.StringFixed(1)+"%",
			"Tasa de recompra", s.RepurchaseRate.StringFixed(1)+"%",
			"", "",
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// kvRow: tres pares etiqueta/valor en una sola fila.
func kvRow(l1, v1, l2, v2, l3, v3 string) core.Row {
	pair := func(label, value string) []core.Component {
		if label == "" {
			return nil
		}
		return []core.Component{
			text.New(label, props.Text{Size: 7.5, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 9, Top: 5}),
		}
	}
	return row.New(11).Add(
		col.New(4).Add(pair(l1, v1)...),
		col.New(4).Add(pair(l2, v2)...),
		col.New(4).Add(pair(l3, v3)...),
	)
}
