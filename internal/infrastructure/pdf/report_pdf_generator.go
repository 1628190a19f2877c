// Package pdf genera los reportes de inventario y ventas como PDF A4 con Maroto v2.
//
// Diseño:
//
//	┌──────────────────────────────────────────────┐
//	│  TÍTULO                        generado el   │
//	│  ──────────────────────────────────────────  │
//	│  ENCABEZADO DE TABLA                         │
//	│  una fila por ítem del reporte               │
//	│  ──────────────────────────────────────────  │
//	│  RESUMEN                                     │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/ports"
)

var _ ports.ReportPDFGenerator = (*ReportGenerator)(nil)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generador ─────────────────────────────────────────────────────────────────

// ReportGenerator implementa ports.ReportPDFGenerator.
type ReportGenerator struct {
	appName string
	now     func() time.Time
}

// NewReportGenerator construye el generador; appName se imprime como autor del documento.
func NewReportGenerator(appName string) *ReportGenerator {
	return &ReportGenerator{appName: appName, now: time.Now}
}

// InventoryReport una fila por producto; las de stock bajo van resaltadas.
func (g *ReportGenerator) InventoryReport(items []dto.InventoryReportItem, threshold int64) ([]byte, error) {
	m := maroto.New(g.config("Inventory report"))
	m.AddRows(g.titleRow("Inventory report"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(headerRow(
		column{"ID", 1, align.Left},
		column{"Product", 6, align.Left},
		column{"Price", 2, align.Right},
		column{"Quantity", 2, align.Right},
		column{"Low", 1, align.Center},
	))

	low := 0
	for _, it := range items {
		c := &props.Color{}
		flag := ""
		if it.LowStock {
			low++
			c = colorAlert
			flag = "yes"
		}
		m.AddRows(row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprint(it.ID), props.Text{Size: 8, Top: 1})),
			col.New(6).Add(text.New(it.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(it.Price.StringFixed(2), props.Text{Size: 8, Top: 1, Align: align.Right})),
			col.New(2).Add(text.New(fmt.Sprint(it.Quantity), props.Text{Size: 8, Top: 1, Align: align.Right, Color: c})),
			col.New(1).Add(text.New(flag, props.Text{Size: 8, Top: 1, Align: align.Center, Color: c})),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(fmt.Sprintf("%d products, %d below the low-stock threshold of %d", len(items), low, threshold)))
	return generate(m)
}

// SalesReport una fila por producto con el total de unidades vendidas.
func (g *ReportGenerator) SalesReport(items []dto.SalesReportItem) ([]byte, error) {
	m := maroto.New(g.config("Sales report"))
	m.AddRows(g.titleRow("Sales report"))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(headerRow(
		column{"Product ID", 2, align.Left},
		column{"Product", 7, align.Left},
		column{"Units sold", 3, align.Right},
	))

	var total int64
	for _, it := range items {
		total += it.TotalSales
		m.AddRows(row.New(6).Add(
			col.New(2).Add(text.New(fmt.Sprint(it.ProductID), props.Text{Size: 8, Top: 1})),
			col.New(7).Add(text.New(it.Product, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(fmt.Sprint(it.TotalSales), props.Text{Size: 8, Top: 1, Align: align.Right})),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(fmt.Sprintf("%d products, %d units sold", len(items), total)))
	return generate(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *ReportGenerator) config(title string) *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.appName, true).
		Build()
}

func (g *ReportGenerator) titleRow(title string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New("Generated "+g.now().Format("2006-01-02 15:04"), props.Text{
			Size: 8, Align: align.Right, Top: 5, Color: colorGray,
		})),
	)
}

type column struct {
	label string
	size  int
	align align.Type
}

func headerRow(cols ...column) core.Row {
	r := row.New(8)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Color: colorPrimary, Top: 2,
		})))
	}
	return r
}

func summaryRow(s string) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(s, props.Text{
		Size: 8, Top: 2, Color: colorGray,
	})))
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}
