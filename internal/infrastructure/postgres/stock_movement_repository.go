package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo kardex de solo inserción en PostgreSQL (pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Recibe el pool o una tx.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementDetailSelect = `
	SELECT m.id, m.product_id, m.user_id, m.type, m.quantity, COALESCE(m.note, ''), m.created_at,
	       p.id, p.name, p.description, p.price, p.quantity, p.image, p.supplier_id, p.category_id, p.created_at, p.updated_at,
	       u.id, u.name, u.email, u.role, u.created_at, u.updated_at
	FROM stock_movements m
	JOIN products p ON p.id = m.product_id
	JOIN users u ON u.id = m.user_id`

const newestFirst = ` ORDER BY m.created_at DESC, m.id DESC`

func scanMovementDetail(row pgx.Row) (*entity.StockMovementDetail, error) {
	var (
		d   entity.StockMovementDetail
		p   entity.Product
		u   entity.User
		typ string
	)
	err := row.Scan(
		&d.ID, &d.ProductID, &d.UserID, &typ, &d.Quantity, &d.Note, &d.CreatedAt,
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.Image, &p.SupplierID, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
		&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.Type = entity.MovementType(typ)
	d.Product = &p
	d.User = &u
	return &d, nil
}

// Create agrega el movimiento y asigna ID y CreatedAt.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, user_id, type, quantity, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, m.ProductID, m.UserID, string(m.Type), m.Quantity, nullString(m.Note)).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si el movimiento no existe.
func (r *StockMovementRepo) GetByID(ctx context.Context, id int64) (*entity.StockMovementDetail, error) {
	d, err := scanMovementDetail(r.q.QueryRow(ctx, movementDetailSelect+` WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return d, nil
}

// List devuelve todo el kardex, del más reciente al más antiguo.
func (r *StockMovementRepo) List(ctx context.Context) ([]*entity.StockMovementDetail, error) {
	return r.list(ctx, movementDetailSelect+newestFirst)
}

// Recent devuelve los limit movimientos más recientes.
func (r *StockMovementRepo) Recent(ctx context.Context, limit int) ([]*entity.StockMovementDetail, error) {
	return r.list(ctx, movementDetailSelect+newestFirst+` LIMIT $1`, limit)
}

// Search busca term literal en la nota, el tipo, o el nombre o descripción del producto.
func (r *StockMovementRepo) Search(ctx context.Context, term string, limit int) ([]*entity.StockMovementDetail, error) {
	query := movementDetailSelect + `
	WHERE COALESCE(m.note, '') ILIKE $1 ESCAPE '\'
	   OR m.type ILIKE $1 ESCAPE '\'
	   OR p.name ILIKE $1 ESCAPE '\'
	   OR p.description ILIKE $1 ESCAPE '\'` + newestFirst + ` LIMIT $2`
	return r.list(ctx, query, containsPattern(term), limit)
}

func (r *StockMovementRepo) list(ctx context.Context, query string, args ...any) ([]*entity.StockMovementDetail, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockMovementDetail
	for rows.Next() {
		d, err := scanMovementDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// CountByProduct cantidad de movimientos de un producto.
func (r *StockMovementRepo) CountByProduct(ctx context.Context, productID int64) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_movements WHERE product_id = $1`, productID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stock movements: %w", err)
	}
	return n, nil
}
