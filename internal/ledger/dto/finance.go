package dto

import (
	"encoding/json"
	"time"
)

// RecordResponse is one ledger record.
type RecordResponse struct {
	ID        uint            `json:"id"`
	Item      string          `json:"item"`
	Label     string          `json:"label"`
	Kind      string          `json:"kind"`
	Quantity  string          `json:"quantity"`
	UnitPrice string          `json:"unit_price"`
	Total     string          `json:"total"`
	Details   json.RawMessage `json:"details,omitempty" swaggertype:"object"`
	CreatedAt time.Time       `json:"created_at"`
}

// FinanceOverviewResponse lists the latest records of each ledger, newest first.
type FinanceOverviewResponse struct {
	Purchases      []RecordResponse `json:"purchases"`
	Sales          []RecordResponse `json:"sales"`
	ServiceRecords []RecordResponse `json:"service_records"`
}

// FinanceSummaryResponse aggregates cash flow over a period.
type FinanceSummaryResponse struct {
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	Purchases    string    `json:"purchases"`
	Sales        string    `json:"sales"`
	ServiceBuys  string    `json:"service_buys"`
	ServiceSells string    `json:"service_sells"`
	Inflow       string    `json:"inflow"`
	Outflow      string    `json:"outflow"`
	Net          string    `json:"net"`
}
