package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/supplychain-console/internal/domain"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

// ReportHandler índice y ejecución de los reportes analíticos.
type ReportHandler struct {
	catalog repository.ReportCatalog
}

// NewReportHandler construye el handler.
func NewReportHandler(catalog repository.ReportCatalog) *ReportHandler {
	return &ReportHandler{catalog: catalog}
}

// Index GET /reports
func (h *ReportHandler) Index(c *fiber.Ctx) error {
	return render(c, "reports", fiber.Map{"Reports": h.catalog.List()})
}

// Run GET /reports/:name
func (h *ReportHandler) Run(c *fiber.Ctx) error {
	result, err := h.catalog.Run(c.Context(), c.Params("name"))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownReport) {
			SetFlash(c, "warning", "Unknown report selected")
		} else {
			SetFlash(c, "danger", "Error running report: "+dbMessage(err))
		}
		return c.Redirect("/reports")
	}
	return render(c, "report_detail", fiber.Map{
		"Title":   result.Title,
		"Headers": result.Headers,
		"Rows":    result.Rows,
	})
}
