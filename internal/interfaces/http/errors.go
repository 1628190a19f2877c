package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain"
)

// writeError traduce un error de dominio a su status y cuerpo HTTP.
// Los errores desconocidos son 500 sin exponer la causa.
func writeError(c *fiber.Ctx, err error) error {
	status, body := mapError(err)
	return c.Status(status).JSON(body)
}

func mapError(err error) (int, dto.ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "Resource not found."}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "VALIDATION", Message: "The given data was invalid."}
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "Not enough stock for this operation."}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: "This action is unauthorized."}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "Invalid credentials."}
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "The email has already been taken."}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "DUPLICATE", Message: "The name has already been taken."}
	case errors.Is(err, domain.ErrSupplierHasProducts):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: "Cannot delete supplier with products."}
	case errors.Is(err, domain.ErrProductHasMovements):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: "Cannot delete product with stock movements."}
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: "The request conflicts with the current state."}
	case errors.Is(err, domain.ErrUnavailable):
		return fiber.StatusServiceUnavailable, dto.ErrorResponse{Code: "UNAVAILABLE", Message: "This feature is not configured."}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "Internal server error."}
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
}

// paramID interpreta el parámetro :id. ok es false (y la respuesta ya está
// escrita) si no es un entero positivo.
func paramID(c *fiber.Ctx) (int64, bool, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Resource not found."})
	}
	return id, true, nil
}
