package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-api/internal/application/usecase"
)

// SearchHandler búsqueda global en productos y movimientos.
type SearchHandler struct {
	uc *usecase.SearchUseCase
}

func NewSearchHandler(uc *usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search godoc
// @Summary      Buscar productos y movimientos
// @Description  Subcadena sin distinguir mayúsculas, máximo 10 resultados por sección. Un q vacío devuelve listas vacías.
// @Tags         search
// @Security     Bearer
// @Produce      json
// @Param        q    query     string  false  "Search text"
// @Success      200  {object}  dto.SearchResponse
// @Router       /api/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
