package usecase_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) Create(ctx context.Context, p *entity.Product) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = 1
	}
	return args.Error(0)
}

func (m *productRepoMock) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) Update(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *productRepoMock) UpdateQuantity(ctx context.Context, id, quantity int64) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *productRepoMock) SetImage(ctx context.Context, id int64, image string) error {
	return m.Called(ctx, id, image).Error(0)
}

func (m *productRepoMock) List(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func (m *productRepoMock) Search(ctx context.Context, term string, limit int) ([]*entity.Product, error) {
	args := m.Called(ctx, term, limit)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func (m *productRepoMock) ExistsBySupplier(ctx context.Context, supplierID int64) (bool, error) {
	args := m.Called(ctx, supplierID)
	return args.Bool(0), args.Error(1)
}

func (m *productRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type movementRepoMock struct{ mock.Mock }

func (m *movementRepoMock) Create(ctx context.Context, mv *entity.StockMovement) error {
	return m.Called(ctx, mv).Error(0)
}

func (m *movementRepoMock) GetByID(ctx context.Context, id int64) (*entity.StockMovementDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*entity.StockMovementDetail)
	return d, args.Error(1)
}

func (m *movementRepoMock) List(ctx context.Context) ([]*entity.StockMovementDetail, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.StockMovementDetail)
	return list, args.Error(1)
}

func (m *movementRepoMock) Recent(ctx context.Context, limit int) ([]*entity.StockMovementDetail, error) {
	args := m.Called(ctx, limit)
	list, _ := args.Get(0).([]*entity.StockMovementDetail)
	return list, args.Error(1)
}

func (m *movementRepoMock) Search(ctx context.Context, term string, limit int) ([]*entity.StockMovementDetail, error) {
	args := m.Called(ctx, term, limit)
	list, _ := args.Get(0).([]*entity.StockMovementDetail)
	return list, args.Error(1)
}

func (m *movementRepoMock) CountByProduct(ctx context.Context, productID int64) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

type categoryRepoMock struct{ mock.Mock }

func (m *categoryRepoMock) Create(ctx context.Context, c *entity.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *categoryRepoMock) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Category)
	return c, args.Error(1)
}

func (m *categoryRepoMock) Update(ctx context.Context, c *entity.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *categoryRepoMock) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Category)
	return list, args.Error(1)
}

func (m *categoryRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type supplierRepoMock struct{ mock.Mock }

func (m *supplierRepoMock) Create(ctx context.Context, s *entity.Supplier) error {
	return m.Called(ctx, s).Error(0)
}

func (m *supplierRepoMock) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*entity.Supplier)
	return s, args.Error(1)
}

func (m *supplierRepoMock) Update(ctx context.Context, s *entity.Supplier) error {
	return m.Called(ctx, s).Error(0)
}

func (m *supplierRepoMock) List(ctx context.Context) ([]*entity.Supplier, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Supplier)
	return list, args.Error(1)
}

func (m *supplierRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type userRepoMock struct{ mock.Mock }

func (m *userRepoMock) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *userRepoMock) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *userRepoMock) UpdateRole(ctx context.Context, id int64, role string) error {
	return m.Called(ctx, id, role).Error(0)
}

type imageStoreMock struct{ mock.Mock }

func (m *imageStoreMock) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	args := m.Called(ctx, key, contentType, body, size)
	return args.String(0), args.Error(1)
}
