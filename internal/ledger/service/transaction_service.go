package service

import (
	"context"
	"encoding/json"
	"fmt"

	"posto-ledger/internal/entity"
	"posto-ledger/internal/ledger/repository"
	"posto-ledger/pkg/logger"

	"github.com/shopspring/decimal"
)

// TransactionRequest is a BUY or SELL on a fuel or service item.
type TransactionRequest struct {
	Item     entity.ItemRef
	Quantity decimal.Decimal
	Kind     entity.TransactionKind
	Note     string
}

// TransactionSummary is the informational outcome of a transaction. It is not persisted.
type TransactionSummary struct {
	ItemLabel string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
	// Kind is "buy" or "sell".
	Kind   string
	Inflow bool
}

// TransactionService routes buy and sell operations to the right ledger.
type TransactionService interface {
	ExecuteTransaction(ctx context.Context, req *TransactionRequest) (*TransactionSummary, error)
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(store *repository.Store, movements MovementService, log *logger.Logger) TransactionService {
	return &transactionService{
		store:     store,
		movements: movements,
		logger:    log,
	}
}

type transactionService struct {
	store     *repository.Store
	movements MovementService
	logger    *logger.Logger
}

// ExecuteTransaction dispatches on the item kind. Fuel goes through the movement
// engine (BUY is IN, SELL is OUT); services only append a service record.
// SELL is always an inflow of cash and BUY an outflow.
func (s *transactionService) ExecuteTransaction(ctx context.Context, req *TransactionRequest) (*TransactionSummary, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty transaction request", ErrInvalidInput)
	}
	if !req.Kind.Valid() {
		err := fmt.Errorf("%w: unknown transaction kind %q", ErrInvalidInput, req.Kind)
		s.logger.WarnContext(ctx, "Rejected transaction", logger.ErrorField(err))
		return nil, err
	}

	switch {
	case req.Item.IsFuel():
		return s.executeFuel(ctx, req)
	case req.Item.IsService():
		return s.executeService(ctx, req)
	default:
		err := fmt.Errorf("%w: %q", ErrInvalidReference, req.Item.String())
		s.logger.WarnContext(ctx, "Rejected transaction", logger.ErrorField(err))
		return nil, err
	}
}

func (s *transactionService) executeFuel(ctx context.Context, req *TransactionRequest) (*TransactionSummary, error) {
	direction := entity.DirectionIn
	if req.Kind == entity.KindSell {
		direction = entity.DirectionOut
	}

	result, err := s.movements.ApplyMovement(ctx, &MovementRequest{
		FuelStockID: req.Item.ID,
		Quantity:    req.Quantity,
		Direction:   direction,
		Note:        req.Note,
		Source:      entity.SourceTransaction,
	})
	if err != nil {
		return nil, err
	}

	return &TransactionSummary{
		ItemLabel: result.FuelStock.Label(),
		Quantity:  result.Quantity,
		UnitPrice: result.PricePerLiter,
		Total:     result.Total,
		Kind:      kindName(req.Kind),
		Inflow:    req.Kind == entity.KindSell,
	}, nil
}

func (s *transactionService) executeService(ctx context.Context, req *TransactionRequest) (*TransactionSummary, error) {
	if err := validateQuantity(req.Quantity); err != nil {
		s.logger.WarnContext(ctx, "Rejected service transaction", logger.ErrorField(err), logger.Field("service_id", req.Item.ID))
		return nil, err
	}

	details, err := json.Marshal(entity.RecordDetails{Source: entity.SourceTransaction, Note: req.Note})
	if err != nil {
		return nil, err
	}

	var summary *TransactionSummary
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		svc, err := tx.Services.FindByID(ctx, req.Item.ID)
		if err != nil {
			return notFound("service", req.Item.ID, err)
		}

		total := req.Quantity.Mul(svc.UnitPrice).Round(2)
		if err := validateTotal(total); err != nil {
			return err
		}
		record := &entity.ServiceRecord{
			ServiceID: svc.ID,
			Kind:      req.Kind,
			Quantity:  req.Quantity,
			UnitPrice: svc.UnitPrice,
			Total:     total,
			Details:   details,
		}
		if err := tx.Records.CreateServiceRecord(ctx, record); err != nil {
			return fmt.Errorf("failed to create service record: %w", err)
		}

		summary = &TransactionSummary{
			ItemLabel: svc.Name,
			Quantity:  req.Quantity,
			UnitPrice: svc.UnitPrice,
			Total:     total,
			Kind:      kindName(req.Kind),
			Inflow:    req.Kind == entity.KindSell,
		}
		return nil
	})
	if err != nil {
		if IsClientError(err) {
			s.logger.WarnContext(ctx, "Service transaction rejected", logger.ErrorField(err), logger.Field("service_id", req.Item.ID))
		} else {
			s.logger.ErrorContext(ctx, "Failed to record service transaction", logger.ErrorField(err), logger.Field("service_id", req.Item.ID))
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "Service transaction recorded",
		logger.Field("service_id", req.Item.ID),
		logger.StringField("kind", string(req.Kind)),
		logger.StringField("total", summary.Total.StringFixed(2)))
	return summary, nil
}

func kindName(k entity.TransactionKind) string {
	if k == entity.KindSell {
		return "sell"
	}
	return "buy"
}

// ParseItemRef parses a textual item reference such as "fuel:7" or "S:3".
func ParseItemRef(raw string) (entity.ItemRef, error) {
	ref, err := entity.ParseItemRef(raw)
	if err != nil {
		return entity.ItemRef{}, fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	return ref, nil
}
