package ports

import "github.com/jhoicas/stock-api/internal/application/dto"

// ReportPDFGenerator genera las filas del reporte como PDF (adaptador maroto).
type ReportPDFGenerator interface {
	InventoryReport(items []dto.InventoryReportItem, threshold int64) ([]byte, error)
	SalesReport(items []dto.SalesReportItem) ([]byte, error)
}
