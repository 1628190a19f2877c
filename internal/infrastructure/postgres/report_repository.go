package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo agregados de solo lectura sobre el kardex.
type ReportRepo struct {
	q Querier
}

func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesByProduct suma las ventas por producto, los más vendidos primero.
func (r *ReportRepo) SalesByProduct(ctx context.Context) ([]repository.SalesTotal, error) {
	query := `
		SELECT m.product_id, COALESCE(p.name, ''), SUM(m.quantity)::BIGINT
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id
		WHERE m.type = $1
		GROUP BY m.product_id, p.name
		ORDER BY SUM(m.quantity) DESC, m.product_id`
	rows, err := r.q.Query(ctx, query, string(entity.MovementSale))
	if err != nil {
		return nil, fmt.Errorf("sales by product: %w", err)
	}
	defer rows.Close()

	var out []repository.SalesTotal
	for rows.Next() {
		var s repository.SalesTotal
		if err := rows.Scan(&s.ProductID, &s.ProductName, &s.TotalSales); err != nil {
			return nil, fmt.Errorf("scan sales total: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// MovementsByMonth agrupa el kardex por mes calendario (UTC).
func (r *ReportRepo) MovementsByMonth(ctx context.Context, since time.Time) ([]repository.MonthlyMovement, error) {
	query := `
		SELECT date_trunc('month', created_at AT TIME ZONE 'UTC') AS month,
		       COALESCE(SUM(quantity) FILTER (WHERE type IN ($2, $3)), 0)::BIGINT,
		       COALESCE(SUM(quantity) FILTER (WHERE type IN ($4, $5)), 0)::BIGINT
		FROM stock_movements
		WHERE created_at >= $1
		GROUP BY month
		ORDER BY month`
	rows, err := r.q.Query(ctx, query, since,
		string(entity.MovementPurchase), string(entity.MovementReturn),
		string(entity.MovementSale), string(entity.MovementAdjustment))
	if err != nil {
		return nil, fmt.Errorf("movements by month: %w", err)
	}
	defer rows.Close()

	var out []repository.MonthlyMovement
	for rows.Next() {
		var m repository.MonthlyMovement
		if err := rows.Scan(&m.Month, &m.In, &m.Out); err != nil {
			return nil, fmt.Errorf("scan monthly movement: %w", err)
		}
		m.Month = m.Month.UTC()
		out = append(out, m)
	}
	return out, rows.Err()
}
