package http_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// memStore respalda cada puerto de repositorio con mapas. No es transaccional; a los
// tests de handlers solo les importa el resultado final.
type memStore struct {
	mu         sync.Mutex
	nextID     int64
	products   map[int64]*entity.Product
	movements  []*entity.StockMovement
	users      map[int64]*entity.User
	categories map[int64]*entity.Category
	suppliers  map[int64]*entity.Supplier
}

func newMemStore() *memStore {
	return &memStore{
		products:   map[int64]*entity.Product{},
		users:      map[int64]*entity.User{},
		categories: map[int64]*entity.Category{},
		suppliers:  map[int64]*entity.Supplier{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) addUser(name, role string) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &entity.User{ID: s.id(), Name: name, Email: strings.ToLower(name) + "@example.com", Role: role}
	s.users[u.ID] = u
	return u
}

func (s *memStore) addProduct(name string, qty int64, supplierID *int64) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &entity.Product{ID: s.id(), Name: name, Quantity: qty, SupplierID: supplierID}
	s.products[p.ID] = p
	return p
}

func (s *memStore) quantity(id int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Quantity
}

func (s *memStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

type productRepo struct{ s *memStore }

func (r productRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.products {
		if other.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	p.ID = r.s.id()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r productRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r productRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r productRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.Quantity = cur.Quantity
	r.s.products[p.ID] = &cp
	return nil
}

func (r productRepo) UpdateQuantity(_ context.Context, id, quantity int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[id].Quantity = quantity
	return nil
}

func (r productRepo) SetImage(_ context.Context, id int64, image string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[id].Image = image
	return nil
}

func (r productRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r productRepo) Search(ctx context.Context, term string, limit int) ([]*entity.Product, error) {
	all, _ := r.List(ctx)
	var out []*entity.Product
	for _, p := range all {
		if len(out) < limit && strings.Contains(strings.ToLower(p.Name+" "+p.Description), strings.ToLower(term)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r productRepo) ExistsBySupplier(_ context.Context, supplierID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.SupplierID != nil && *p.SupplierID == supplierID {
			return true, nil
		}
	}
	return false, nil
}

func (r productRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}

type movementRepo struct{ s *memStore }

func (r movementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m.ID = r.s.id()
	m.CreatedAt = time.Now().UTC()
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r movementRepo) detail(m *entity.StockMovement) *entity.StockMovementDetail {
	d := &entity.StockMovementDetail{StockMovement: *m}
	if p, ok := r.s.products[m.ProductID]; ok {
		cp := *p
		d.Product = &cp
	}
	if u, ok := r.s.users[m.UserID]; ok {
		cp := *u
		d.User = &cp
	}
	return d
}

func (r movementRepo) GetByID(_ context.Context, id int64) (*entity.StockMovementDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.movements {
		if m.ID == id {
			return r.detail(m), nil
		}
	}
	return nil, nil
}

func (r movementRepo) List(_ context.Context) ([]*entity.StockMovementDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.StockMovementDetail, 0, len(r.s.movements))
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		out = append(out, r.detail(r.s.movements[i]))
	}
	return out, nil
}

func (r movementRepo) Recent(ctx context.Context, limit int) ([]*entity.StockMovementDetail, error) {
	all, _ := r.List(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r movementRepo) Search(ctx context.Context, term string, limit int) ([]*entity.StockMovementDetail, error) {
	all, _ := r.List(ctx)
	var out []*entity.StockMovementDetail
	for _, m := range all {
		if len(out) < limit && (strings.Contains(m.Note, term) || strings.Contains(string(m.Type), term)) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r movementRepo) CountByProduct(_ context.Context, productID int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			n++
		}
	}
	return n, nil
}

type userRepo struct{ s *memStore }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.users {
		if other.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	u.ID = r.s.id()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r userRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r userRepo) UpdateRole(_ context.Context, id int64, role string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users[id].Role = role
	return nil
}

type categoryRepo struct{ s *memStore }

func (r categoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.id()
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r categoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r categoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r categoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r categoryRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.categories, id)
	return nil
}

type supplierRepo struct{ s *memStore }

func (r supplierRepo) Create(_ context.Context, sp *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sp.ID = r.s.id()
	cp := *sp
	r.s.suppliers[sp.ID] = &cp
	return nil
}

func (r supplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sp, ok := r.s.suppliers[id]; ok {
		cp := *sp
		return &cp, nil
	}
	return nil, nil
}

func (r supplierRepo) Update(_ context.Context, sp *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *sp
	r.s.suppliers[sp.ID] = &cp
	return nil
}

func (r supplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Supplier, 0, len(r.s.suppliers))
	for _, sp := range r.s.suppliers {
		cp := *sp
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r supplierRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.suppliers, id)
	return nil
}

type reportRepo struct{ s *memStore }

func (r reportRepo) SalesByProduct(_ context.Context) ([]repository.SalesTotal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	totals := map[int64]int64{}
	var order []int64
	for _, m := range r.s.movements {
		if m.Type != entity.MovementSale {
			continue
		}
		if _, seen := totals[m.ProductID]; !seen {
			order = append(order, m.ProductID)
		}
		totals[m.ProductID] += m.Quantity
	}
	out := make([]repository.SalesTotal, 0, len(order))
	for _, id := range order {
		st := repository.SalesTotal{ProductID: id, TotalSales: totals[id]}
		if p, ok := r.s.products[id]; ok {
			st.ProductName = p.Name
		}
		out = append(out, st)
	}
	return out, nil
}

func (r reportRepo) MovementsByMonth(_ context.Context, since time.Time) ([]repository.MonthlyMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.MonthlyMovement
	for _, m := range r.s.movements {
		if m.CreatedAt.Before(since) {
			continue
		}
		month := time.Date(m.CreatedAt.Year(), m.CreatedAt.Month(), 1, 0, 0, 0, 0, time.UTC)
		if len(out) == 0 || !out[len(out)-1].Month.Equal(month) {
			out = append(out, repository.MonthlyMovement{Month: month})
		}
		last := &out[len(out)-1]
		if m.Type.Additive() {
			last.In += m.Quantity
		} else {
			last.Out += m.Quantity
		}
	}
	return out, nil
}

// txRunner entrega a fn los repositorios compartidos; cada escritura de memStore ya es atómica.
type txRunner struct{ s *memStore }

func (t txRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.StockMovementRepository) error) error {
	return fn(productRepo{t.s}, movementRepo{t.s})
}
