package report

import (
	"context"

	"github.com/tu-usuario/staff-api/internal/domain/repository"
)

// listado completo para los informes; suficiente para una plantilla interna.
const rosterLimit = 10000

// UseCase informes de la plantilla (PDF de nómina y export XML).
type UseCase struct {
	employeeRepo repository.EmployeeRepository
	pdf          RosterPDFGenerator
	xml          RosterXMLExporter
}

// NewUseCase construye el caso de uso de informes.
func NewUseCase(employeeRepo repository.EmployeeRepository, pdf RosterPDFGenerator, xml RosterXMLExporter) *UseCase {
	return &UseCase{employeeRepo: employeeRepo, pdf: pdf, xml: xml}
}

// RosterPDF genera el informe de nómina en PDF.
func (uc *UseCase) RosterPDF(ctx context.Context) ([]byte, error) {
	employees, err := uc.employeeRepo.List(rosterLimit, 0)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GeneratePDF(ctx, employees)
}

// RosterXML exporta la plantilla completa como XML.
func (uc *UseCase) RosterXML(ctx context.Context) ([]byte, error) {
	employees, err := uc.employeeRepo.List(rosterLimit, 0)
	if err != nil {
		return nil, err
	}
	return uc.xml.ExportXML(employees)
}
