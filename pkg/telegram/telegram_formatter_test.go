package telegram

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"short"}, SplitMessage("short", 10))
	assert.Equal(t, []string{"aaaa\nbbbb\n", "cccc"}, SplitMessage("aaaa\nbbbb\ncccc", 10))

	parts := SplitMessage(strings.Repeat("x", 25), 10)
	assert.Equal(t, []string{strings.Repeat("x", 10), strings.Repeat("x", 10), strings.Repeat("x", 5)}, parts)
}

func TestSplitMessageKeepsRunesWhole(t *testing.T) {
	parts := SplitMessage(strings.Repeat("ó", 10), 5)
	require.Len(t, parts, 5)
	for _, part := range parts {
		assert.True(t, utf8.ValidString(part), "part %q", part)
		assert.Equal(t, "óó", part)
	}

	parts = SplitMessage("Combustível "+strings.Repeat("é", 40), 16)
	assert.Equal(t, "Combustível "+strings.Repeat("é", 40), strings.Join(parts, ""))
	for _, part := range parts {
		assert.True(t, utf8.ValidString(part), "part %q", part)
		assert.LessOrEqual(t, len(part), 16)
	}
}

func TestFormatLowStockAlert(t *testing.T) {
	msg := FormatLowStockAlert(LowStockAlert{
		Label:     "Diesel S-10",
		Remaining: decimal.RequireFromString("150"),
		Threshold: decimal.RequireFromString("500"),
		LastSale:  decimal.RequireFromString("40.5"),
		At:        time.Date(2024, 5, 17, 14, 30, 0, 0, time.UTC),
	})

	assert.Contains(t, msg, "*Combustível:* Diesel S-10")
	assert.Contains(t, msg, "*Restante:* 150.00 L")
	assert.Contains(t, msg, "*Limite:* 500.00 L")
	assert.Contains(t, msg, "40.50 L")
	assert.Contains(t, msg, "17/05/2024 14:30")
}

func TestFormatDailySummary(t *testing.T) {
	msg := FormatDailySummary(DailySummary{
		Day:          time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC),
		Sales:        decimal.RequireFromString("135"),
		ServiceSells: decimal.RequireFromString("90"),
		Inflow:       decimal.RequireFromString("225"),
		Purchases:    decimal.RequireFromString("300"),
		Outflow:      decimal.RequireFromString("300"),
		Net:          decimal.RequireFromString("-75"),
		Stocks: []StockLevel{
			{Label: "Etanol", Quantity: decimal.RequireFromString("120"), PricePerLiter: decimal.RequireFromString("4.5")},
			{Label: "Gas_X", Quantity: decimal.RequireFromString("10"), PricePerLiter: decimal.RequireFromString("6"), Low: true},
		},
	})

	assert.Contains(t, msg, "Resumo do dia 17/05/2024")
	assert.Contains(t, msg, "Vendas de combustível: R$ 135.00")
	assert.Contains(t, msg, "📉 *Saldo:* R$ -75.00")
	assert.Contains(t, msg, "- Etanol: 120.00 L a R$ 4.50\n")
	assert.Contains(t, msg, `Gas\_X: 10.00 L a R$ 6.00 ⚠️`)
}
