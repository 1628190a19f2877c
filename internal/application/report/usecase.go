// Package report construye los reportes de inventario y ventas.
package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/ports"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// DefaultLowStockThreshold se marcan los productos estrictamente por debajo de esta cantidad.
const DefaultLowStockThreshold = 10

// unknownProduct etiqueta para ventas de un producto sin nombre.
const unknownProduct = "Unknown"

// UseCase proyecciones de solo lectura sobre productos y el kardex.
type UseCase struct {
	productRepo repository.ProductRepository
	reportRepo  repository.ReportRepository
	threshold   int64
	pdf         ports.ReportPDFGenerator
}

// NewUseCase construye el caso de uso de reportes. pdf puede ser nil, lo que deshabilita los PDF.
func NewUseCase(
	productRepo repository.ProductRepository,
	reportRepo repository.ReportRepository,
	threshold int64,
	pdf ports.ReportPDFGenerator,
) *UseCase {
	return &UseCase{productRepo: productRepo, reportRepo: reportRepo, threshold: threshold, pdf: pdf}
}

// Threshold umbral de stock bajo vigente.
func (uc *UseCase) Threshold() int64 { return uc.threshold }

// Inventory lista todos los productos con low_stock = quantity < threshold.
func (uc *UseCase) Inventory(ctx context.Context) ([]dto.InventoryReportItem, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: list products: %w", err)
	}
	out := make([]dto.InventoryReportItem, 0, len(products))
	for _, p := range products {
		out = append(out, dto.InventoryReportItem{
			ProductResponse: *dto.NewProductResponse(p),
			LowStock:        p.Quantity < uc.threshold,
		})
	}
	return out, nil
}

// Sales suma la cantidad de los movimientos de venta por producto.
func (uc *UseCase) Sales(ctx context.Context) ([]dto.SalesReportItem, error) {
	totals, err := uc.reportRepo.SalesByProduct(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: sales by product: %w", err)
	}
	out := make([]dto.SalesReportItem, 0, len(totals))
	for _, s := range totals {
		name := s.ProductName
		if name == "" {
			name = unknownProduct
		}
		out = append(out, dto.SalesReportItem{ProductID: s.ProductID, Product: name, TotalSales: s.TotalSales})
	}
	return out, nil
}

// InventoryPDF genera Inventory como documento PDF.
func (uc *UseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrUnavailable
	}
	items, err := uc.Inventory(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.InventoryReport(items, uc.threshold)
}

// SalesPDF genera Sales como documento PDF.
func (uc *UseCase) SalesPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrUnavailable
	}
	items, err := uc.Sales(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.SalesReport(items)
}
