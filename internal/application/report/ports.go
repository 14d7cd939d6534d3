package report

import (
	"context"

	"github.com/tu-usuario/staff-api/internal/domain/entity"
)

// RosterPDFGenerator genera el PDF del informe de nómina.
type RosterPDFGenerator interface {
	GeneratePDF(ctx context.Context, employees []*entity.Employee) ([]byte, error)
}

// RosterXMLExporter serializa la plantilla completa a XML.
type RosterXMLExporter interface {
	ExportXML(employees []*entity.Employee) ([]byte, error)
}
