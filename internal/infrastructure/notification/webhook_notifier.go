package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/usecase/interfaces"
)

// WebhookNotifier posts one {"phone", "text"} message per recipient.
//
// Recipients come from the per-status phone list; PENDING_SHIPMENT goes only to the
// responsible seller of the proposal.
type WebhookNotifier struct {
	url        string
	client     *http.Client
	recipients map[entities.ProposalStatus][]string
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url string, timeout time.Duration, recipients map[string][]string) *WebhookNotifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	byStatus := make(map[entities.ProposalStatus][]string, len(recipients))
	for status, phones := range recipients {
		byStatus[entities.ProposalStatus(strings.ToLower(status))] = phones
	}
	return &WebhookNotifier{
		url:        url,
		client:     &http.Client{Timeout: timeout},
		recipients: byStatus,
	}
}

type webhookMessage struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

func (n *WebhookNotifier) Notify(ctx context.Context, snapshot entities.Proposal, status entities.ProposalStatus) (bool, error) {
	text, ok := RenderMessage(snapshot, status)
	if !ok {
		return false, nil
	}

	var phones []string
	if status == entities.ProposalStatusPendingShipment {
		if phone := strings.TrimSpace(snapshot.ResponsibleSellerPhone); phone != "" {
			phones = []string{phone}
		}
	} else {
		phones = n.recipients[status]
	}
	if len(phones) == 0 {
		slog.DebugContext(ctx, "[notification][webhook] no recipients", "proposal_id", snapshot.ID, "status", status)
		return false, nil
	}

	for _, phone := range phones {
		if err := n.post(ctx, webhookMessage{Phone: phone, Text: text}); err != nil {
			return false, err
		}
		slog.InfoContext(ctx, "[notification][webhook] message sent", "proposal_id", snapshot.ID, "status", status, "phone", phone)
	}
	return true, nil
}

func (n *WebhookNotifier) post(ctx context.Context, msg webhookMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	}
	return fmt.Errorf("webhook returned status %d", resp.StatusCode)
}
