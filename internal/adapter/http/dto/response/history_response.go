package response

import (
	"time"

	"fluxo_propostas/internal/domain/entities"
)

type HistoryEntryResponse struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

func FromHistory(entries []entities.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{
			Status:    string(e.Status),
			Note:      e.Note,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
