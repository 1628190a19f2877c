package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-api/internal/application/i18n"
	"github.com/jhoicas/stock-api/internal/domain"
)

// TranslationHandler sirve las tablas de traducción de la UI (público).
type TranslationHandler struct {
	svc *i18n.Service
}

func NewTranslationHandler(svc *i18n.Service) *TranslationHandler {
	return &TranslationHandler{svc: svc}
}

// Get godoc
// @Summary      Traducciones de la UI
// @Description  Tabla plana clave/texto. lang acepta en o kh (también km y tags BCP 47); cualquier otro valor usa en.
// @Tags         translations
// @Produce      json
// @Param        lang  query     string  false  "Language"  default(en)
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/translations [get]
func (h *TranslationHandler) Get(c *fiber.Ctx) error {
	table, err := h.svc.Translations(c.UserContext(), c.Query("lang"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load translations"})
	}
	return c.JSON(table)
}
