package report

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	appreport "github.com/tu-usuario/staff-api/internal/application/report"
	"github.com/tu-usuario/staff-api/internal/domain/entity"
)

var _ appreport.RosterXMLExporter = (*EtreeRosterExporter)(nil)

// EtreeRosterExporter serializa la plantilla a XML con etree.
type EtreeRosterExporter struct{}

// NewEtreeRosterExporter construye el exportador.
func NewEtreeRosterExporter() *EtreeRosterExporter { return &EtreeRosterExporter{} }

// ExportXML produce un documento <Roster> con un <Employee> por fila.
// El hash de contraseña nunca se exporta.
func (x *EtreeRosterExporter) ExportXML(employees []*entity.Employee) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Roster")
	root.CreateAttr("generatedAt", time.Now().Format(time.RFC3339))
	root.CreateAttr("count", fmt.Sprintf("%d", len(employees)))

	for _, e := range employees {
		emp := root.CreateElement("Employee")
		emp.CreateAttr("id", e.ID)
		emp.CreateElement("FirstName").SetText(e.FirstName)
		emp.CreateElement("LastName").SetText(e.LastName)
		emp.CreateElement("Gender").SetText(e.Gender)
		emp.CreateElement("Age").SetText(fmt.Sprintf("%d", e.Age))
		emp.CreateElement("Position").SetText(e.Position)
		emp.CreateElement("Category").SetText(e.Category)
		payroll := emp.CreateElement("Payroll")
		payroll.CreateElement("Salary").SetText(e.Salary.StringFixed(2))
		payroll.CreateElement("Tax").SetText(e.Tax.StringFixed(2))
		if e.UserID != nil {
			emp.CreateElement("UserId").SetText(*e.UserID)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("report: serializar XML: %w", err)
	}
	return out, nil
}
