package telegram

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"
)

// LowStockAlert describes a fuel whose level dropped under the alert threshold.
type LowStockAlert struct {
	Label     string
	Remaining decimal.Decimal
	Threshold decimal.Decimal
	LastSale  decimal.Decimal
	At        time.Time
}

// StockLevel is one line of the stock section of the daily summary.
type StockLevel struct {
	Label         string
	Quantity      decimal.Decimal
	PricePerLiter decimal.Decimal
	Low           bool
}

// DailySummary is the content of the end of day report.
type DailySummary struct {
	Day          time.Time
	Sales        decimal.Decimal
	Purchases    decimal.Decimal
	ServiceSells decimal.Decimal
	ServiceBuys  decimal.Decimal
	Inflow       decimal.Decimal
	Outflow      decimal.Decimal
	Net          decimal.Decimal
	Stocks       []StockLevel
}

// FormatLowStockAlert formats a low stock alert as Markdown.
func FormatLowStockAlert(a LowStockAlert) string {
	var sb strings.Builder
	sb.WriteString("⛽ *Estoque baixo* ⛽\n\n")
	sb.WriteString(fmt.Sprintf("*Combustível:* %s\n", escape(a.Label)))
	sb.WriteString(fmt.Sprintf("*Restante:* %s L\n", a.Remaining.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("*Limite:* %s L\n", a.Threshold.StringFixed(2)))
	if a.LastSale.IsPositive() {
		sb.WriteString(fmt.Sprintf("*Última saída:* %s L\n", a.LastSale.StringFixed(2)))
	}
	sb.WriteString(fmt.Sprintf("\n🕒 %s", a.At.Format("02/01/2006 15:04")))
	return sb.String()
}

// FormatDailySummary formats the daily finance summary as Markdown.
func FormatDailySummary(s DailySummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 *Resumo do dia %s* 📊\n\n", s.Day.Format("02/01/2006")))

	sb.WriteString("💰 *Entradas*\n")
	sb.WriteString(fmt.Sprintf("- Vendas de combustível: R$ %s\n", s.Sales.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Serviços vendidos: R$ %s\n", s.ServiceSells.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("*Total:* R$ %s\n\n", s.Inflow.StringFixed(2)))

	sb.WriteString("💸 *Saídas*\n")
	sb.WriteString(fmt.Sprintf("- Compras de combustível: R$ %s\n", s.Purchases.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Serviços comprados: R$ %s\n", s.ServiceBuys.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("*Total:* R$ %s\n\n", s.Outflow.StringFixed(2)))

	netIcon := "📈"
	if s.Net.IsNegative() {
		netIcon = "📉"
	}
	sb.WriteString(fmt.Sprintf("%s *Saldo:* R$ %s\n", netIcon, s.Net.StringFixed(2)))

	if len(s.Stocks) > 0 {
		sb.WriteString("\n⛽ *Estoque*\n")
		for _, level := range s.Stocks {
			marker := ""
			if level.Low {
				marker = " ⚠️"
			}
			sb.WriteString(fmt.Sprintf("- %s: %s L a R$ %s%s\n",
				escape(level.Label), level.Quantity.StringFixed(2), level.PricePerLiter.StringFixed(2), marker))
		}
	}
	return sb.String()
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
