// Package report genera los informes de la plantilla: el PDF de nómina
// (Maroto v2) y el export XML (etree).
package report

import (
	"context"
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
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appreport "github.com/tu-usuario/staff-api/internal/application/report"
	"github.com/tu-usuario/staff-api/internal/domain/entity"
)

var _ appreport.RosterPDFGenerator = (*MarotoRosterGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoRosterGenerator implementa report.RosterPDFGenerator usando Maroto v2.
type MarotoRosterGenerator struct{}

// NewMarotoRosterGenerator construye el generador.
func NewMarotoRosterGenerator() *MarotoRosterGenerator { return &MarotoRosterGenerator{} }

// GeneratePDF genera el informe de nómina y devuelve sus bytes.
func (g *MarotoRosterGenerator) GeneratePDF(_ context.Context, employees []*entity.Employee) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de nómina", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, e := range employees {
		m.AddRows(employeeRow(e))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(employees))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("report: generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Informe de nómina", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("2006-01-02 15:04"), props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Size: 9, Style: fontstyle.Bold, Color: colorWhite, Align: align.Left, Top: 1,
		}))
	}
	return row.New(7).Add(
		header("Empleado", 4),
		header("Posición", 2),
		header("Categoría", 2),
		header("Salario", 2),
		header("Impuesto", 2),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func employeeRow(e *entity.Employee) core.Row {
	cell := func(value string, size int, al align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: al, Top: 1}))
	}
	return row.New(6).Add(
		cell(e.FullName(), 4, align.Left),
		cell(e.Position, 2, align.Left),
		cell(e.Category, 2, align.Left),
		cell(e.Salary.StringFixed(2), 2, align.Right),
		cell(e.Tax.StringFixed(2), 2, align.Right),
	)
}

func totalsRow(employees []*entity.Employee) core.Row {
	totalSalary := decimal.Zero
	totalTax := decimal.Zero
	for _, e := range employees {
		totalSalary = totalSalary.Add(e.Salary)
		totalTax = totalTax.Add(e.Tax)
	}
	return row.New(8).Add(
		col.New(6).Add(text.New(
			fmt.Sprintf("Total empleados: %d", len(employees)),
			props.Text{Size: 9, Style: fontstyle.Bold, Top: 1},
		)),
		col.New(2),
		col.New(2).Add(text.New(totalSalary.StringFixed(2), props.Text{
			Size: 9, Style: fontstyle.Bold, Align: align.Right, Top: 1,
		})),
		col.New(2).Add(text.New(totalTax.StringFixed(2), props.Text{
			Size: 9, Style: fontstyle.Bold, Align: align.Right, Top: 1,
		})),
	)
}
