package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"posto-ledger/internal/entity"
	"posto-ledger/internal/ledger/repository"
	"posto-ledger/pkg/logger"

	"github.com/shopspring/decimal"
)

// MovementRequest asks for a fuel stock adjustment. The price is never
// supplied by the caller; the stock's current price is used.
type MovementRequest struct {
	FuelStockID uint
	Quantity    decimal.Decimal
	Direction   entity.Direction
	Note        string
	// Source tags the audit details of the record. Defaults to entity.SourceMovement.
	Source string
}

// MovementResult describes a committed movement.
type MovementResult struct {
	FuelStock     entity.FuelStock
	Direction     entity.Direction
	Quantity      decimal.Decimal
	PricePerLiter decimal.Decimal
	Total         decimal.Decimal
	RecordID      uint
	CreatedAt     time.Time
}

// MovementService adjusts fuel stock and appends the matching ledger record.
type MovementService interface {
	ApplyMovement(ctx context.Context, req *MovementRequest) (*MovementResult, error)
}

// NewMovementService creates a new movement service.
func NewMovementService(store *repository.Store, events repository.EventRepository, log *logger.Logger) MovementService {
	if events == nil {
		events = repository.NewNopEventRepository()
	}
	return &movementService{
		store:  store,
		events: events,
		logger: log,
	}
}

type movementService struct {
	store  *repository.Store
	events repository.EventRepository
	logger *logger.Logger
}

// ApplyMovement locks the fuel stock row, checks the resulting level, appends a
// purchase (IN) or sale (OUT) record and stores the new quantity in one
// transaction. The committed movement is then published on the ledger stream.
func (s *movementService) ApplyMovement(ctx context.Context, req *MovementRequest) (*MovementResult, error) {
	if err := validateMovement(req); err != nil {
		s.logger.WarnContext(ctx, "Rejected movement", logger.ErrorField(err), logger.Field("fuel_stock_id", req.FuelStockID))
		return nil, err
	}

	var result *MovementResult
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		var err error
		result, err = applyLocked(ctx, tx, req)
		return err
	})
	if err != nil {
		if IsClientError(err) {
			s.logger.WarnContext(ctx, "Movement rejected", logger.ErrorField(err),
				logger.Field("fuel_stock_id", req.FuelStockID),
				logger.StringField("direction", string(req.Direction)),
				logger.StringField("quantity", req.Quantity.String()))
		} else {
			s.logger.ErrorContext(ctx, "Failed to apply movement", logger.ErrorField(err), logger.Field("fuel_stock_id", req.FuelStockID))
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "Movement applied",
		logger.Field("fuel_stock_id", result.FuelStock.ID),
		logger.StringField("direction", string(result.Direction)),
		logger.StringField("quantity", result.Quantity.StringFixed(2)),
		logger.StringField("quantity_after", result.FuelStock.Quantity.StringFixed(2)),
		logger.StringField("total", result.Total.StringFixed(2)))

	s.publish(ctx, result, req.Source)
	return result, nil
}

// publish is best effort; the movement is already committed.
func (s *movementService) publish(ctx context.Context, result *MovementResult, source string) {
	event := &entity.MovementEvent{
		FuelStockID:   result.FuelStock.ID,
		FuelType:      result.FuelStock.FuelType,
		Direction:     result.Direction,
		Quantity:      result.Quantity,
		QuantityAfter: result.FuelStock.Quantity,
		PricePerLiter: result.PricePerLiter,
		Total:         result.Total,
		RecordID:      result.RecordID,
		Source:        source,
		OccurredAt:    result.CreatedAt,
	}
	if err := s.events.PublishMovement(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish movement event", logger.ErrorField(err), logger.Field("record_id", result.RecordID))
	}
}

func validateMovement(req *MovementRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty movement request", ErrInvalidInput)
	}
	if req.FuelStockID == 0 {
		return fmt.Errorf("%w: fuel stock id is required", ErrInvalidInput)
	}
	if !req.Direction.Valid() {
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, req.Direction)
	}
	if req.Source == "" {
		req.Source = entity.SourceMovement
	}
	return validateQuantity(req.Quantity)
}

// applyLocked is the single movement routine. It must run inside tx's
// transaction; the row lock is held until that transaction ends, so the
// quantity and the price are read and written as one versioned record.
func applyLocked(ctx context.Context, tx *repository.Store, req *MovementRequest) (*MovementResult, error) {
	stock, err := tx.FuelStocks.FindByIDForUpdate(ctx, req.FuelStockID)
	if err != nil {
		return nil, notFound("fuel stock", req.FuelStockID, err)
	}

	delta := req.Quantity
	if req.Direction == entity.DirectionOut {
		delta = delta.Neg()
	}
	after := stock.Quantity.Add(delta)
	if after.IsNegative() {
		return nil, &InsufficientStockError{
			FuelStockID: stock.ID,
			Label:       stock.Label(),
			Available:   stock.Quantity,
			Requested:   req.Quantity,
		}
	}
	if !after.LessThan(maxAmount) {
		return nil, fmt.Errorf("%w: resulting quantity %s exceeds the tank limit", ErrInvalidInput, after.StringFixed(2))
	}

	details, err := json.Marshal(entity.RecordDetails{Source: req.Source, Note: req.Note})
	if err != nil {
		return nil, err
	}

	price := stock.PricePerLiter
	total := req.Quantity.Mul(price).Round(2)
	if err := validateTotal(total); err != nil {
		return nil, err
	}
	result := &MovementResult{
		Direction:     req.Direction,
		Quantity:      req.Quantity,
		PricePerLiter: price,
		Total:         total,
	}

	switch req.Direction {
	case entity.DirectionIn:
		record := &entity.PurchaseRecord{
			FuelStockID:   stock.ID,
			Quantity:      req.Quantity,
			PricePerLiter: price,
			Total:         total,
			Details:       details,
		}
		if err := tx.Records.CreatePurchase(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to create purchase record: %w", err)
		}
		result.RecordID, result.CreatedAt = record.ID, record.CreatedAt
	case entity.DirectionOut:
		record := &entity.SaleRecord{
			FuelStockID:   stock.ID,
			Quantity:      req.Quantity,
			PricePerLiter: price,
			Total:         total,
			Details:       details,
		}
		if err := tx.Records.CreateSale(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to create sale record: %w", err)
		}
		result.RecordID, result.CreatedAt = record.ID, record.CreatedAt
	}

	if err := tx.FuelStocks.UpdateQuantity(ctx, stock.ID, after); err != nil {
		return nil, fmt.Errorf("failed to update fuel stock quantity: %w", err)
	}
	stock.Quantity = after
	result.FuelStock = *stock
	return result, nil
}
