package inventory_test

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// memDB reemplaza en memoria a PostgreSQL con las dos propiedades de las que depende
// el motor de movimientos: bloqueos de fila hasta que termina la transacción, y escrituras
// que solo se ven tras el commit.
type memDB struct {
	mu        sync.Mutex
	products  map[int64]*entity.Product
	users     map[int64]*entity.User
	movements []*entity.StockMovement
	rowLocks  map[int64]*sync.Mutex
	nextMovID atomic.Int64
	runs      atomic.Int64

	// failInsert, si está definido, lo devuelve el insert del kardex dentro de la transacción.
	failInsert error
}

func newMemDB() *memDB {
	return &memDB{
		products: map[int64]*entity.Product{},
		users:    map[int64]*entity.User{},
		rowLocks: map[int64]*sync.Mutex{},
	}
}

func (db *memDB) addProduct(id, quantity int64) {
	db.mu.Lock()
	defer db.mu.Unlock()
	now := time.Now()
	db.products[id] = &entity.Product{
		ID:        id,
		Name:      "product-" + decimal.NewFromInt(id).String(),
		Price:     decimal.NewFromInt(3),
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (db *memDB) addUser(id int64, role string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.users[id] = &entity.User{ID: id, Name: "user", Email: "user@example.com", Role: role}
}

func (db *memDB) quantity(id int64) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.products[id].Quantity
}

func (db *memDB) ledger() []entity.StockMovement {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := make([]entity.StockMovement, 0, len(db.movements))
	for _, m := range db.movements {
		out = append(out, *m)
	}
	return out
}

func (db *memDB) rowLock(id int64) *sync.Mutex {
	db.mu.Lock()
	defer db.mu.Unlock()
	l, ok := db.rowLocks[id]
	if !ok {
		l = &sync.Mutex{}
		db.rowLocks[id] = l
	}
	return l
}

// Run implementa inventory.TxRunner.
func (db *memDB) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	db.runs.Add(1)
	tx := &memTx{db: db, updates: map[int64]int64{}}
	defer tx.release()

	if err := fn(&txProductRepo{tx: tx}, &txMovementRepo{tx: tx}); err != nil {
		return err
	}
	tx.commit()
	return nil
}

type memTx struct {
	db      *memDB
	locked  []*sync.Mutex
	updates map[int64]int64
	inserts []*entity.StockMovement
}

func (tx *memTx) commit() {
	tx.db.mu.Lock()
	defer tx.db.mu.Unlock()
	for id, q := range tx.updates {
		tx.db.products[id].Quantity = q
	}
	tx.db.movements = append(tx.db.movements, tx.inserts...)
}

func (tx *memTx) release() {
	for i := len(tx.locked) - 1; i >= 0; i-- {
		tx.locked[i].Unlock()
	}
}

type txProductRepo struct {
	repository.ProductRepository
	tx *memTx
}

func (r *txProductRepo) GetForUpdate(_ context.Context, id int64) (*entity.Product, error) {
	l := r.tx.db.rowLock(id)
	l.Lock()
	r.tx.locked = append(r.tx.locked, l)

	r.tx.db.mu.Lock()
	defer r.tx.db.mu.Unlock()
	p, ok := r.tx.db.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	if q, ok := r.tx.updates[id]; ok {
		cp.Quantity = q
	}
	return &cp, nil
}

func (r *txProductRepo) UpdateQuantity(_ context.Context, id, quantity int64) error {
	r.tx.updates[id] = quantity
	return nil
}

type txMovementRepo struct {
	repository.StockMovementRepository
	tx *memTx
}

func (r *txMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	if r.tx.db.failInsert != nil {
		return r.tx.db.failInsert
	}
	m.ID = r.tx.db.nextMovID.Add(1)
	m.CreatedAt = time.Now()
	cp := *m
	r.tx.inserts = append(r.tx.inserts, &cp)
	return nil
}

// memUserRepo lee usuarios fuera de toda transacción.
type memUserRepo struct {
	repository.UserRepository
	db *memDB
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// memMovementRepo lee el kardex confirmado.
type memMovementRepo struct {
	repository.StockMovementRepository
	db *memDB
}

func (r *memMovementRepo) detail(m *entity.StockMovement) *entity.StockMovementDetail {
	d := &entity.StockMovementDetail{StockMovement: *m}
	if p, ok := r.db.products[m.ProductID]; ok {
		cp := *p
		d.Product = &cp
	}
	if u, ok := r.db.users[m.UserID]; ok {
		cp := *u
		d.User = &cp
	}
	return d
}

func (r *memMovementRepo) List(_ context.Context) ([]*entity.StockMovementDetail, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]*entity.StockMovementDetail, 0, len(r.db.movements))
	for _, m := range r.db.movements {
		out = append(out, r.detail(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memMovementRepo) GetByID(_ context.Context, id int64) (*entity.StockMovementDetail, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, m := range r.db.movements {
		if m.ID == id {
			return r.detail(m), nil
		}
	}
	return nil, nil
}
