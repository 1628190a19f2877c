package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// SearchLimit máximo de resultados por sección de la búsqueda.
const SearchLimit = 10

// SearchUseCase búsqueda de texto libre en productos y en el kardex.
type SearchUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
}

func NewSearchUseCase(productRepo repository.ProductRepository, movRepo repository.StockMovementRepository) *SearchUseCase {
	return &SearchUseCase{productRepo: productRepo, movRepo: movRepo}
}

// Search busca q como subcadena literal sin distinguir mayúsculas. En productos busca en nombre
// y descripción; en movimientos en nota, tipo y nombre y descripción del producto,
// del más reciente al más antiguo. Un q vacío devuelve dos listas vacías sin ir a la base.
func (uc *SearchUseCase) Search(ctx context.Context, q string) (*dto.SearchResponse, error) {
	out := &dto.SearchResponse{
		Products:  []dto.ProductResponse{},
		Movements: []dto.MovementResponse{},
	}
	q = strings.TrimSpace(q)
	if q == "" {
		return out, nil
	}

	products, err := uc.productRepo.Search(ctx, q, SearchLimit)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.Search(ctx, q, SearchLimit)
	if err != nil {
		return nil, err
	}
	out.Products = dto.NewProductResponses(products)
	out.Movements = dto.NewMovementResponses(movements)
	return out, nil
}
