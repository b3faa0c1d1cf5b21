// Package notification delivers proposal status changes to the sales team through
// a WhatsApp automation webhook.
package notification

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"fluxo_propostas/internal/domain/entities"
)

const missing = "N/A"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// RenderMessage builds the pt-BR text sent for status. It reports false for statuses
// nobody is notified about.
func RenderMessage(p entities.Proposal, status entities.ProposalStatus) (string, bool) {
	client := missing
	if p.Client != nil && strings.TrimSpace(p.Client.Name) != "" {
		client = p.Client.Name
	}
	number := p.DisplayNumber()
	value := printer.Sprintf("R$ %.2f", p.Total().InexactFloat64())

	var b strings.Builder
	switch status {
	case entities.ProposalStatusPendingSimulation:
		b.WriteString("*Nova Proposta #" + number + "*\n")
		b.WriteString("Cliente: " + client + "\n")
		b.WriteString("Valor: " + value + "\n")
		b.WriteString("Status: Aguardando simulação")
	case entities.ProposalStatusPendingQuote:
		volume, weight := missing, missing
		if v := p.FinalVolumeM3(); v.Valid && v.Decimal.IsPositive() {
			volume = printer.Sprintf("%.4f m³", v.Decimal.InexactFloat64())
		}
		if w := p.WeightTotalKg; w.Valid && w.Decimal.IsPositive() {
			weight = printer.Sprintf("%.3f kg", w.Decimal.InexactFloat64())
		}
		b.WriteString("*Proposta #" + number + " pronta para cotação*\n")
		b.WriteString("Cliente: " + client + "\n")
		b.WriteString("Valor: " + value + "\n")
		b.WriteString("Cubagem: " + volume + " | Peso: " + weight)
	case entities.ProposalStatusPendingShipment:
		b.WriteString("*Proposta #" + number + " pronta para envio*\n")
		b.WriteString("Cliente: " + client + "\n")
		b.WriteString("Valor: " + value + "\n")
		if q := p.SelectedQuote(); q != nil && q.Carrier != nil {
			b.WriteString(printer.Sprintf("Frete: %s R$ %.2f (%d dias)\n", q.Carrier.Name, q.Price.InexactFloat64(), q.LeadTimeDays))
		}
		b.WriteString("Cotação finalizada, aguarda envio ao cliente")
	default:
		return "", false
	}
	return b.String(), true
}
