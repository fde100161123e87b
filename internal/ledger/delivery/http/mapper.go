package http

import (
	"encoding/json"
	"strings"

	"posto-ledger/internal/entity"
	"posto-ledger/internal/ledger/dto"
	"posto-ledger/internal/ledger/service"
)

func toFuelStockResponse(stock *entity.FuelStock) dto.FuelStockResponse {
	return dto.FuelStockResponse{
		ID:             stock.ID,
		Item:           entity.FuelRef(stock.ID).String(),
		FuelType:       string(stock.FuelType),
		Label:          stock.Label(),
		QuantityLiters: stock.Quantity.StringFixed(2),
		PricePerLiter:  stock.PricePerLiter.StringFixed(2),
		UpdatedAt:      stock.UpdatedAt,
	}
}

func toServiceResponse(svc *entity.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:          svc.ID,
		Item:        entity.ServiceRef(svc.ID).String(),
		Name:        svc.Name,
		Description: svc.Description,
		UnitPrice:   svc.UnitPrice.StringFixed(2),
		CreatedAt:   svc.CreatedAt,
	}
}

func toMovementResponse(res *service.MovementResult) dto.MovementResponse {
	return dto.MovementResponse{
		RecordID:       res.RecordID,
		Direction:      string(res.Direction),
		QuantityLiters: res.Quantity.StringFixed(2),
		PricePerLiter:  res.PricePerLiter.StringFixed(2),
		Total:          res.Total.StringFixed(2),
		CreatedAt:      res.CreatedAt,
		FuelStock:      toFuelStockResponse(&res.FuelStock),
	}
}

func toItemResponse(item service.CatalogItem) dto.ItemResponse {
	return dto.ItemResponse{
		Item:  item.Ref.String(),
		Kind:  item.Ref.Kind.String(),
		Label: item.Label,
		Price: item.Price.StringFixed(2),
	}
}

func toTransactionResponse(summary *service.TransactionSummary) dto.TransactionResponse {
	return dto.TransactionResponse{
		ItemLabel: summary.ItemLabel,
		Quantity:  summary.Quantity.StringFixed(2),
		UnitPrice: summary.UnitPrice.StringFixed(2),
		Total:     summary.Total.StringFixed(2),
		Kind:      summary.Kind,
		Inflow:    summary.Inflow,
	}
}

func toOverviewResponse(overview *service.FinanceOverview) dto.FinanceOverviewResponse {
	resp := dto.FinanceOverviewResponse{
		Purchases:      make([]dto.RecordResponse, 0, len(overview.Purchases)),
		Sales:          make([]dto.RecordResponse, 0, len(overview.Sales)),
		ServiceRecords: make([]dto.RecordResponse, 0, len(overview.ServiceRecords)),
	}
	for _, p := range overview.Purchases {
		resp.Purchases = append(resp.Purchases, dto.RecordResponse{
			ID:        p.ID,
			Item:      entity.FuelRef(p.FuelStockID).String(),
			Label:     fuelLabel(p.FuelStock),
			Kind:      strings.ToLower(string(entity.KindBuy)),
			Quantity:  p.Quantity.StringFixed(2),
			UnitPrice: p.PricePerLiter.StringFixed(2),
			Total:     p.Total.StringFixed(2),
			Details:   json.RawMessage(p.Details),
			CreatedAt: p.CreatedAt,
		})
	}
	for _, s := range overview.Sales {
		resp.Sales = append(resp.Sales, dto.RecordResponse{
			ID:        s.ID,
			Item:      entity.FuelRef(s.FuelStockID).String(),
			Label:     fuelLabel(s.FuelStock),
			Kind:      strings.ToLower(string(entity.KindSell)),
			Quantity:  s.Quantity.StringFixed(2),
			UnitPrice: s.PricePerLiter.StringFixed(2),
			Total:     s.Total.StringFixed(2),
			Details:   json.RawMessage(s.Details),
			CreatedAt: s.CreatedAt,
		})
	}
	for _, r := range overview.ServiceRecords {
		label := ""
		if r.Service != nil {
			label = r.Service.Name
		}
		resp.ServiceRecords = append(resp.ServiceRecords, dto.RecordResponse{
			ID:        r.ID,
			Item:      entity.ServiceRef(r.ServiceID).String(),
			Label:     label,
			Kind:      strings.ToLower(string(r.Kind)),
			Quantity:  r.Quantity.StringFixed(2),
			UnitPrice: r.UnitPrice.StringFixed(2),
			Total:     r.Total.StringFixed(2),
			Details:   json.RawMessage(r.Details),
			CreatedAt: r.CreatedAt,
		})
	}
	return resp
}

func toSummaryResponse(summary *service.FinanceSummary) dto.FinanceSummaryResponse {
	return dto.FinanceSummaryResponse{
		From:         summary.From,
		To:           summary.To,
		Purchases:    summary.Purchases.StringFixed(2),
		Sales:        summary.Sales.StringFixed(2),
		ServiceBuys:  summary.ServiceBuys.StringFixed(2),
		ServiceSells: summary.ServiceSells.StringFixed(2),
		Inflow:       summary.Inflow.StringFixed(2),
		Outflow:      summary.Outflow.StringFixed(2),
		Net:          summary.Net.StringFixed(2),
	}
}

func fuelLabel(stock *entity.FuelStock) string {
	if stock == nil {
		return ""
	}
	return stock.Label()
}
