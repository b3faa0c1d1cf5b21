package entities

import "strings"

// Tags embedded in Proposal.ImportNote. Other systems parse these back out of the
// note, so the format is kept even though OrderNumber and ExternalSellerName are
// first-class fields now.
const (
	NoteTagOrderNumber = "bling_numero:"
	NoteTagSeller      = "bling_vendedor:"
)

// ComposeImportNote prefixes the order number and seller tags to the free-text note:
//
//	bling_vendedor:Ana; bling_numero:1234; customer asked for pallets
func ComposeImportNote(orderNumber, sellerName, note string) string {
	note = strings.TrimSpace(note)
	parts := make([]string, 0, 3)

	if sellerName = strings.TrimSpace(sellerName); sellerName != "" && !strings.Contains(note, NoteTagSeller) {
		parts = append(parts, NoteTagSeller+sellerName)
	}
	if orderNumber = strings.TrimSpace(orderNumber); orderNumber != "" && !strings.Contains(note, NoteTagOrderNumber) {
		parts = append(parts, NoteTagOrderNumber+orderNumber)
	}
	if note != "" {
		parts = append(parts, note)
	}
	return strings.Join(parts, "; ")
}

// NoteTagValue extracts the value following tag up to the next ";".
func NoteTagValue(note, tag string) string {
	idx := strings.Index(note, tag)
	if idx < 0 {
		return ""
	}
	rest := note[idx+len(tag):]
	if end := strings.Index(rest, ";"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}
