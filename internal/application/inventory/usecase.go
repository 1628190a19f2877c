package inventory

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/inventory"
	"github.com/jhoicas/stock-api/internal/domain/policy"
	"github.com/jhoicas/stock-api/internal/domain/repository"
	"github.com/jhoicas/stock-api/pkg/logger"
)

// Actor es el usuario autenticado que invoca una operación.
type Actor struct {
	UserID int64
	Role   string
}

// MovementInput solicitud para aplicar un movimiento de stock.
type MovementInput struct {
	ProductID int64
	Type      string
	Quantity  int64
	Note      string
}

// MovementUseCase registra movimientos de forma transaccional: bloquea la fila del producto
// (SELECT FOR UPDATE), aplica la regla de signo, escribe la nueva existencia y el movimiento
// y hace Commit. Cualquier falla revierte todo el intento.
type MovementUseCase struct {
	txRunner TxRunner
	userRepo repository.UserRepository
	movRepo  repository.StockMovementRepository
	log      *logger.Logger
	recorder Recorder
}

// NewMovementUseCase construye el caso de uso. log y recorder pueden ser nil.
func NewMovementUseCase(
	txRunner TxRunner,
	userRepo repository.UserRepository,
	movRepo repository.StockMovementRepository,
	log *logger.Logger,
	recorder Recorder,
) *MovementUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &MovementUseCase{
		txRunner: txRunner,
		userRepo: userRepo,
		movRepo:  movRepo,
		log:      log,
		recorder: recorder,
	}
}

// ApplyMovement autoriza al actor, valida la solicitud y luego, en una sola
// transacción, bloquea el producto, aplica la regla de signo y agrega el movimiento.
// Errores: domain.ErrUnauthorized, ErrInvalidInput, ErrNotFound, ErrInsufficientStock.
// Cada llamada es un evento nuevo; las solicitudes idénticas no se deduplican.
func (uc *MovementUseCase) ApplyMovement(ctx context.Context, actor Actor, in MovementInput) (*dto.MovementResponse, error) {
	mt := entity.MovementType(in.Type)

	// Primero el rol del token: un actor denegado no llega a la base.
	if err := policy.Authorize(actor.Role, policy.RecordMovement); err != nil {
		uc.recorder.MovementRejected(mt, "unauthorized")
		return nil, err
	}

	in.Note = strings.TrimSpace(in.Note)
	if err := validateMovement(mt, in); err != nil {
		uc.recorder.MovementRejected(mt, "invalid")
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.recorder.MovementRejected(mt, "unauthorized")
		return nil, domain.ErrUnauthorized
	}
	// El rol guardado manda: un token emitido antes de un cambio de rol no conserva el permiso.
	if err := policy.Authorize(user.Role, policy.RecordMovement); err != nil {
		uc.recorder.MovementRejected(mt, "unauthorized")
		uc.log.Warn().
			Int64("user_id", user.ID).
			Str("token_role", actor.Role).
			Str("stored_role", user.Role).
			Msg("movement rejected: stored role not allowed")
		return nil, err
	}

	var detail *entity.StockMovementDetail
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		next, err := inventory.NextQuantity(product.Quantity, in.Quantity, mt)
		if err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(ctx, product.ID, next); err != nil {
			return err
		}
		product.Quantity = next
		product.UpdatedAt = time.Now()

		mov := &entity.StockMovement{
			ProductID: product.ID,
			UserID:    user.ID,
			Type:      mt,
			Quantity:  in.Quantity,
			Note:      in.Note,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		detail = &entity.StockMovementDetail{StockMovement: *mov, Product: product, User: user}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientStock):
			uc.recorder.MovementRejected(mt, "insufficient_stock")
			uc.log.Warn().
				Int64("product_id", in.ProductID).
				Int64("user_id", user.ID).
				Str("type", in.Type).
				Int64("quantity", in.Quantity).
				Msg("movement rejected: insufficient stock")
		case errors.Is(err, domain.ErrNotFound):
			uc.recorder.MovementRejected(mt, "not_found")
		default:
			uc.recorder.MovementRejected(mt, "error")
			uc.log.Error().Err(err).Int64("product_id", in.ProductID).Msg("apply movement")
		}
		return nil, err
	}

	uc.recorder.MovementApplied(mt, in.Quantity)
	uc.log.Info().
		Int64("movement_id", detail.ID).
		Int64("product_id", detail.ProductID).
		Int64("user_id", detail.UserID).
		Str("type", string(detail.Type)).
		Int64("quantity", detail.Quantity).
		Int64("on_hand", detail.Product.Quantity).
		Msg("movement applied")

	return dto.NewMovementResponse(detail), nil
}

func validateMovement(mt entity.MovementType, in MovementInput) error {
	if !mt.Valid() {
		return domain.ErrInvalidInput
	}
	if in.ProductID <= 0 || in.Quantity < 1 {
		return domain.ErrInvalidInput
	}
	if utf8.RuneCountInString(in.Note) > entity.MaxNoteLength {
		return domain.ErrInvalidInput
	}
	return nil
}

// List devuelve todo el kardex, del más reciente al más antiguo.
func (uc *MovementUseCase) List(ctx context.Context) ([]dto.MovementResponse, error) {
	list, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewMovementResponses(list), nil
}

// GetByID devuelve un movimiento o domain.ErrNotFound.
func (uc *MovementUseCase) GetByID(ctx context.Context, id int64) (*dto.MovementResponse, error) {
	m, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewMovementResponse(m), nil
}
