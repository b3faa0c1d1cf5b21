package usecase

import (
	"context"
	"sync"

	"fluxo_propostas/internal/usecase/interfaces"
)

type commitHooksKey struct{}

type commitHooks struct {
	mu  sync.Mutex
	fns []func()
}

func (h *commitHooks) add(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fns = append(h.fns, fn)
}

func (h *commitHooks) run() {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// withinTransaction runs fn in one unit of work and fires the hooks registered with
// afterCommit once it commits. Nested calls join the outermost transaction and its
// hooks. Hooks of a rolled back transaction are discarded.
func withinTransaction(ctx context.Context, uow interfaces.IUnitOfWork, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(commitHooksKey{}).(*commitHooks); ok {
		return uow.WithinTransaction(ctx, fn)
	}

	hooks := &commitHooks{}
	ctx = context.WithValue(ctx, commitHooksKey{}, hooks)
	if err := uow.WithinTransaction(ctx, fn); err != nil {
		return err
	}
	hooks.run()
	return nil
}

// afterCommit defers fn until the surrounding transaction commits. Outside a
// transaction fn runs immediately.
func afterCommit(ctx context.Context, fn func()) {
	if hooks, ok := ctx.Value(commitHooksKey{}).(*commitHooks); ok {
		hooks.add(fn)
		return
	}
	fn()
}
