// Package analytics construye el resumen del dashboard que se ve al iniciar sesión.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

const (
	dashboardRecentMovements = 5 // movimientos del widget de actividad
	dashboardMonths          = 6 // meses del gráfico de entradas/salidas, incluido el actual
)

// DashboardUseCase contadores de stock, actividad reciente y serie mensual de entradas/salidas.
//
// Solo lectura: no abre transacción, así que con escrituras concurrentes las cifras
// pueden diferir entre sí por unos milisegundos.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	reportRepo   repository.ReportRepository
	threshold    int64
	now          func() time.Time
}

// NewDashboardUseCase construye el caso de uso. threshold es el mismo umbral
// de stock bajo que usa el reporte de inventario.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	reportRepo repository.ReportRepository,
	threshold int64,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		reportRepo:   reportRepo,
		threshold:    threshold,
		now:          time.Now,
	}
}

// GetSummary ejecuta tres consultas en paralelo:
//  1. products.List          → conteo de productos, stock bajo y agotados
//  2. movements.Recent(5)    → RecentMovements
//  3. MovementsByMonth(6m)   → Monthly, con ceros en meses vacíos
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	now := uc.now().UTC()
	firstMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(dashboardMonths - 1), 0)

	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type recentResult struct {
		list []*entity.StockMovementDetail
		err  error
	}
	type monthlyResult struct {
		list []repository.MonthlyMovement
		err  error
	}

	productsCh := make(chan productsResult, 1)
	recentCh := make(chan recentResult, 1)
	monthlyCh := make(chan monthlyResult, 1)

	go func() {
		list, err := uc.productRepo.List(ctx)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.movementRepo.Recent(ctx, dashboardRecentMovements)
		recentCh <- recentResult{list, err}
	}()
	go func() {
		list, err := uc.reportRepo.MovementsByMonth(ctx, firstMonth)
		monthlyCh <- monthlyResult{list, err}
	}()

	products := <-productsCh
	recent := <-recentCh
	monthly := <-monthlyCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: products: %w", products.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: recent movements: %w", recent.err)
	}
	if monthly.err != nil {
		return nil, fmt.Errorf("dashboard: movements by month: %w", monthly.err)
	}

	out := &dto.DashboardSummary{
		ProductCount:      len(products.list),
		LowStockThreshold: uc.threshold,
		RecentMovements:   dto.NewMovementResponses(recent.list),
		Monthly:           monthSeries(firstMonth, dashboardMonths, monthly.list),
	}
	for _, p := range products.list {
		if p.Quantity < uc.threshold {
			out.LowStockCount++
		}
		if p.Quantity == 0 {
			out.OutOfStockCount++
		}
	}
	return out, nil
}

// monthSeries reparte los totales en n meses consecutivos desde first.
func monthSeries(first time.Time, n int, totals []repository.MonthlyMovement) []dto.MonthlyMovementItem {
	byMonth := make(map[string]repository.MonthlyMovement, len(totals))
	for _, t := range totals {
		byMonth[monthKey(t.Month)] = t
	}
	out := make([]dto.MonthlyMovementItem, 0, n)
	for i := 0; i < n; i++ {
		key := monthKey(first.AddDate(0, i, 0))
		t := byMonth[key]
		out = append(out, dto.MonthlyMovementItem{Month: key, In: t.In, Out: t.Out})
	}
	return out
}

func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
