package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/staff-api/internal/application/dto"
	"github.com/tu-usuario/staff-api/internal/application/report"
)

// ReportHandler informes de la plantilla.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler de informes.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// RosterPDF godoc
// @Summary      Informe de nómina en PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /api/employees/report.pdf [get]
func (h *ReportHandler) RosterPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.RosterPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="roster.pdf"`)
	return c.Send(pdf)
}

// RosterXML godoc
// @Summary      Export de la plantilla en XML
// @Tags         reports
// @Produce      application/xml
// @Security     BearerAuth
// @Success      200  {string}  string
// @Router       /api/employees/export.xml [get]
func (h *ReportHandler) RosterXML(c *fiber.Ctx) error {
	xml, err := h.uc.RosterXML(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(xml)
}
