package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/ports"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

const (
	maxNameLength  = 255
	MaxImageBytes  = 2 << 20 // 2 MiB
	imageKeyPrefix = "products"
)

// content types de imagen permitidos y la extensión usada en la llave del objeto.
var imageTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/svg+xml": ".svg",
}

// ProductUseCase CRUD de productos. Quantity solo se fija al crear; después la
// controla la aplicación de movimientos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	movRepo      repository.StockMovementRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	images       ports.ImageStore // nil si no hay almacenamiento configurado
}

// NewProductUseCase construye el caso de uso. images puede ser nil.
func NewProductUseCase(
	repo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	images ports.ImageStore,
) *ProductUseCase {
	return &ProductUseCase{
		repo:         repo,
		movRepo:      movRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		images:       images,
	}
}

// Create agrega un producto con su existencia inicial.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validate(ctx, in.Name, in.Price, in.SupplierID, in.CategoryID); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		SupplierID:  in.SupplierID,
		CategoryID:  in.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return dto.NewProductResponse(product), nil
}

// GetByID devuelve el producto o domain.ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewProductResponse(product), nil
}

// Update cambia todos los campos salvo quantity.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := uc.validate(ctx, in.Name, in.Price, in.SupplierID, in.CategoryID); err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.SupplierID = in.SupplierID
	product.CategoryID = in.CategoryID
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return dto.NewProductResponse(product), nil
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewProductResponses(list), nil
}

// Delete elimina un producto sin movimientos. Los productos con movimientos se
// conservan porque el kardex no pierde filas.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	n, err := uc.movRepo.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrProductHasMovements
	}
	return uc.repo.Delete(ctx, id)
}

// ImageUpload archivo de imagen recibido para un producto.
type ImageUpload struct {
	ContentType string
	Size        int64
	Body        io.Reader
}

// SetImage guarda el archivo en el image store y registra la referencia en el producto.
// Devuelve domain.ErrUnavailable si no hay store configurado.
func (uc *ProductUseCase) SetImage(ctx context.Context, id int64, img ImageUpload) (*dto.ProductResponse, error) {
	if uc.images == nil {
		return nil, domain.ErrUnavailable
	}
	ext, ok := imageTypes[img.ContentType]
	if !ok || img.Size <= 0 || img.Size > MaxImageBytes {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}

	key := path.Join(imageKeyPrefix, fmt.Sprint(id), uuid.NewString()+ext)
	ref, err := uc.images.Put(ctx, key, img.ContentType, img.Body, img.Size)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}
	if err := uc.repo.SetImage(ctx, id, ref); err != nil {
		return nil, err
	}
	product.Image = ref
	product.UpdatedAt = time.Now()
	return dto.NewProductResponse(product), nil
}

func (uc *ProductUseCase) get(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// validate revisa los campos comunes de create y update. Un proveedor o categoría
// inexistente es entrada inválida, igual que cualquier otro campo.
func (uc *ProductUseCase) validate(ctx context.Context, name string, price decimal.Decimal, supplierID, categoryID *int64) error {
	if name == "" || utf8.RuneCountInString(name) > maxNameLength || price.IsNegative() {
		return domain.ErrInvalidInput
	}
	if supplierID != nil {
		s, err := uc.supplierRepo.GetByID(ctx, *supplierID)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrInvalidInput
		}
	}
	if categoryID != nil {
		c, err := uc.categoryRepo.GetByID(ctx, *categoryID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrInvalidInput
		}
	}
	return nil
}
