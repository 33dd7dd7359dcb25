// Package pdf genera el comprobante imprimible (slip) de entregas y recepciones.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Referencia  │  Estado + Fecha programada   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PARTES: Bodega / Contacto / Responsable                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Cantidad | Costo unit. | Subtotal   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: unidades + valor                                   │
//	│  FOOTER: QR de la referencia + firmas                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/stockops-api/internal/application/inventory"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
)

var _ inventory.SlipGenerator = (*SlipGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// SlipGenerator implementa inventory.SlipGenerator con Maroto v2.
type SlipGenerator struct {
	company string
	printer *message.Printer
}

// NewSlipGenerator construye el generador. company aparece como autor del PDF.
func NewSlipGenerator(company string) *SlipGenerator {
	return &SlipGenerator{company: company, printer: message.NewPrinter(language.English)}
}

// GenerateSlip genera el PDF del documento (cabecera + líneas) y devuelve sus bytes.
func (g *SlipGenerator) GenerateSlip(_ context.Context, doc *entity.Document) ([]byte, error) {
	title := slipTitle(doc.Kind)
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title+" "+doc.Reference, true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.itemRows(doc.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(doc.Items))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

func slipTitle(kind entity.DocumentKind) string {
	if kind == entity.KindReceipt {
		return "RECEIPT"
	}
	return "DELIVERY ORDER"
}

func headerRow(doc *entity.Document, title string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Reference, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 9,
			}),
		),
		col.New(5).Add(
			text.New("Status: "+string(doc.Status), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Scheduled: "+doc.ScheduledDate.Format("2006-01-02"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New("Created: "+doc.CreatedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// partiesRow: bodega y contacto según la dirección del documento.
func partiesRow(doc *entity.Document) core.Row {
	whLabel, contactLabel := "FROM WAREHOUSE", "DELIVER TO"
	if doc.Kind == entity.KindReceipt {
		whLabel, contactLabel = "TO WAREHOUSE", "RECEIVED FROM"
	}
	block := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(value, "-"), props.Text{Size: 9, Top: 6}),
		)
	}
	return row.New(14).Add(
		block(whLabel, doc.WarehouseName),
		block(contactLabel, doc.ContactName),
		block("RESPONSIBLE", doc.ResponsibleName),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Product", 4, align.Left),
		h("Quantity", 2, align.Right),
		h("Unit cost", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

func (g *SlipGenerator) itemRows(items []entity.DocumentItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := it.ProductName
		if it.AlertOutOfStock {
			name += " (*)"
		}
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(it.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(g.formatQty(it.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.formatMoney(it.UnitCost), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.formatMoney(it.Quantity.Mul(it.UnitCost)), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func (g *SlipGenerator) totalsRow(items []entity.DocumentItem) core.Row {
	units, value := totals(items)
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	amount := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Color: colorPrimary})
	}
	return row.New(8).Add(
		col.New(4),
		col.New(2).Add(label("Units:")),
		col.New(2).Add(amount(g.formatQty(units))),
		col.New(2).Add(label("Total:")),
		col.New(2).Add(amount(g.formatMoney(value))),
	)
}

// footerRow: QR con la referencia y espacio para firmas.
func footerRow(doc *entity.Document) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(doc.Reference, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Items marked (*) may leave the warehouse with negative stock.", props.Text{
				Size: 7, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Prepared by: ______________________", props.Text{Size: 9, Top: 18, Left: 3}),
			text.New("Received by: ______________________", props.Text{Size: 9, Top: 28, Left: 3}),
		),
	)
}

func totals(items []entity.DocumentItem) (decimal.Decimal, decimal.Decimal) {
	units, value := decimal.Zero, decimal.Zero
	for _, it := range items {
		units = units.Add(it.Quantity)
		value = value.Add(it.Quantity.Mul(it.UnitCost))
	}
	return units, value
}

// formatQty cantidades con separador de miles; decimales solo si los hay.
func (g *SlipGenerator) formatQty(d decimal.Decimal) string {
	if d.IsInteger() {
		return g.printer.Sprintf("%d", d.IntPart())
	}
	f, _ := d.Round(3).Float64()
	return g.printer.Sprintf("%.3f", f)
}

func (g *SlipGenerator) formatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return g.printer.Sprintf("$%.2f", f)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
