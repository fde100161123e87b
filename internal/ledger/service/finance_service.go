package service

import (
	"context"
	"fmt"
	"time"

	"posto-ledger/internal/entity"
	"posto-ledger/internal/ledger/repository"
	"posto-ledger/pkg/logger"

	"github.com/shopspring/decimal"
)

// DefaultRecentLimit is the number of records shown per ledger when no limit is given.
const DefaultRecentLimit = 10

// FinanceOverview holds the latest records of each ledger, newest first.
type FinanceOverview struct {
	Purchases      []entity.PurchaseRecord
	Sales          []entity.SaleRecord
	ServiceRecords []entity.ServiceRecord
}

// FinanceSummary aggregates cash flow over [From, To).
type FinanceSummary struct {
	From         time.Time
	To           time.Time
	Purchases    decimal.Decimal
	Sales        decimal.Decimal
	ServiceBuys  decimal.Decimal
	ServiceSells decimal.Decimal
	Inflow       decimal.Decimal
	Outflow      decimal.Decimal
	Net          decimal.Decimal
}

// FinanceService reads the ledgers for reporting.
type FinanceService interface {
	Overview(ctx context.Context, limit int) (*FinanceOverview, error)
	Summary(ctx context.Context, from, to time.Time) (*FinanceSummary, error)
}

// NewFinanceService creates a new finance service.
func NewFinanceService(store *repository.Store, defaultLimit int, log *logger.Logger) FinanceService {
	if defaultLimit <= 0 {
		defaultLimit = DefaultRecentLimit
	}
	return &financeService{
		store:        store,
		defaultLimit: defaultLimit,
		logger:       log,
	}
}

type financeService struct {
	store        *repository.Store
	defaultLimit int
	logger       *logger.Logger
}

func (s *financeService) Overview(ctx context.Context, limit int) (*FinanceOverview, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	purchases, err := s.store.Records.RecentPurchases(ctx, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load recent purchases", logger.ErrorField(err))
		return nil, err
	}
	sales, err := s.store.Records.RecentSales(ctx, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load recent sales", logger.ErrorField(err))
		return nil, err
	}
	serviceRecords, err := s.store.Records.RecentServiceRecords(ctx, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load recent service records", logger.ErrorField(err))
		return nil, err
	}

	return &FinanceOverview{
		Purchases:      purchases,
		Sales:          sales,
		ServiceRecords: serviceRecords,
	}, nil
}

// Summary sums the ledgers. Sales and service sells are inflow; purchases and
// service buys are outflow.
func (s *financeService) Summary(ctx context.Context, from, to time.Time) (*FinanceSummary, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("%w: period start must be before its end", ErrInvalidInput)
	}

	totals, err := s.store.Records.Totals(ctx, from, to)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to compute ledger totals", logger.ErrorField(err))
		return nil, err
	}

	inflow := totals.Sales.Add(totals.ServiceSells)
	outflow := totals.Purchases.Add(totals.ServiceBuys)
	return &FinanceSummary{
		From:         from,
		To:           to,
		Purchases:    totals.Purchases,
		Sales:        totals.Sales,
		ServiceBuys:  totals.ServiceBuys,
		ServiceSells: totals.ServiceSells,
		Inflow:       inflow,
		Outflow:      outflow,
		Net:          inflow.Sub(outflow),
	}, nil
}
