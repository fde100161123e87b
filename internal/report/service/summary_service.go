package service

import (
	"context"
	"fmt"
	"time"

	"posto-ledger/internal/ledger/repository"
	ledgerservice "posto-ledger/internal/ledger/service"
	"posto-ledger/pkg/logger"
	"posto-ledger/pkg/telegram"
	"posto-ledger/pkg/utils"

	"github.com/shopspring/decimal"
)

// SummaryService builds and sends the end of day finance report.
type SummaryService interface {
	BuildDailySummary(ctx context.Context, day time.Time) (*telegram.DailySummary, error)
	SendDailySummary(ctx context.Context)
}

// NewSummaryService creates a new summary service. Days are cut at midnight in loc.
func NewSummaryService(finance ledgerservice.FinanceService, stocks repository.FuelStockRepository, notifier telegram.Notifier, threshold decimal.Decimal, loc *time.Location, log *logger.Logger) SummaryService {
	if loc == nil {
		loc = time.UTC
	}
	return &summaryService{
		finance:   finance,
		stocks:    stocks,
		notifier:  notifier,
		threshold: threshold,
		loc:       loc,
		log:       log,
	}
}

type summaryService struct {
	finance   ledgerservice.FinanceService
	stocks    repository.FuelStockRepository
	notifier  telegram.Notifier
	threshold decimal.Decimal
	loc       *time.Location
	log       *logger.Logger
}

// BuildDailySummary aggregates the ledgers for the calendar day containing day.
func (s *summaryService) BuildDailySummary(ctx context.Context, day time.Time) (*telegram.DailySummary, error) {
	from := utils.StartOfDay(day.In(s.loc))
	to := from.AddDate(0, 0, 1)

	totals, err := s.finance.Summary(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize ledger: %w", err)
	}
	stocks, err := s.stocks.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load fuel stocks: %w", err)
	}

	summary := &telegram.DailySummary{
		Day:          from,
		Sales:        totals.Sales,
		Purchases:    totals.Purchases,
		ServiceSells: totals.ServiceSells,
		ServiceBuys:  totals.ServiceBuys,
		Inflow:       totals.Inflow,
		Outflow:      totals.Outflow,
		Net:          totals.Net,
	}
	for _, stock := range stocks {
		summary.Stocks = append(summary.Stocks, telegram.StockLevel{
			Label:         stock.Label(),
			Quantity:      stock.Quantity,
			PricePerLiter: stock.PricePerLiter,
			Low:           stock.Quantity.LessThan(s.threshold),
		})
	}
	return summary, nil
}

// SendDailySummary reports the current day. It is run by the cron scheduler.
func (s *summaryService) SendDailySummary(ctx context.Context) {
	summary, err := s.BuildDailySummary(ctx, time.Now())
	if err != nil {
		s.log.Error("Failed to build daily summary", logger.ErrorField(err))
		return
	}
	if err := s.notifier.SendMessage(telegram.FormatDailySummary(*summary)); err != nil {
		s.log.Error("Failed to send daily summary", logger.ErrorField(err))
		return
	}
	s.log.Info("Daily summary sent",
		logger.StringField("day", summary.Day.Format("2006-01-02")),
		logger.StringField("net", summary.Net.StringFixed(2)))
}
