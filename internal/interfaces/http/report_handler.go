package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-api/internal/application/report"
)

// ReportHandler reportes de inventario y ventas (solo lectura).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Inventory godoc
// @Summary      Reporte de inventario
// @Description  Todos los productos, con low_stock cuando quantity está bajo el umbral configurado.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.InventoryReportItem
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Inventory(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Sales godoc
// @Summary      Reporte de ventas
// @Description  Unidades vendidas por producto, sumando todos los movimientos de venta.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.SalesReportItem
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.Sales(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// InventoryPDF godoc
// @Summary      Reporte de inventario (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory.pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	b, err := h.uc.InventoryPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, "inventory", b)
}

// SalesPDF godoc
// @Summary      Reporte de ventas (PDF)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/sales.pdf [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	b, err := h.uc.SalesPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, "sales", b)
}

func sendPDF(c *fiber.Ctx, name string, b []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`inline; filename="%s-report-%s.pdf"`, name, time.Now().Format("20060102")))
	return c.Send(b)
}
