package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fluxo_propostas/internal/domain/entities"
	"fluxo_propostas/internal/usecase/interfaces"
)

// AsyncNotifier hands every notification to its own goroutine so a slow webhook
// never holds a request. Notify reports true once the message is queued; the
// delivery outcome is only logged.
type AsyncNotifier struct {
	next    interfaces.INotifier
	timeout time.Duration
	wg      sync.WaitGroup
}

var _ interfaces.INotifier = (*AsyncNotifier)(nil)

func NewAsyncNotifier(next interfaces.INotifier, timeout time.Duration) *AsyncNotifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AsyncNotifier{next: next, timeout: timeout}
}

func (n *AsyncNotifier) Notify(ctx context.Context, snapshot entities.Proposal, status entities.ProposalStatus) (bool, error) {
	// The request context ends with the response; delivery must outlive it.
	ctx = context.WithoutCancel(ctx)

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(ctx, "[notification][async] notifier panicked", "proposal_id", snapshot.ID, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(ctx, n.timeout)
		defer cancel()

		delivered, err := n.next.Notify(ctx, snapshot, status)
		switch {
		case err != nil:
			slog.WarnContext(ctx, "[notification][async] delivery failed", "proposal_id", snapshot.ID, "status", status, "err", err)
		case !delivered:
			slog.DebugContext(ctx, "[notification][async] nothing delivered", "proposal_id", snapshot.ID, "status", status)
		}
	}()
	return true, nil
}

// Wait blocks until every queued notification finished or ctx is done.
func (n *AsyncNotifier) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NopNotifier is used when no webhook is configured.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, entities.Proposal, entities.ProposalStatus) (bool, error) {
	return false, nil
}
