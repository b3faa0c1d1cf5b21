package interfaces

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_interface_mock.go -package=mock_interfaces

import (
	"context"

	"fluxo_propostas/internal/domain/entities"
)

// INotifier abstracts the outbound messaging collaborator.
//
// It is called once per recorded transition with a snapshot of the proposal. The
// boolean reports whether the message was delivered; callers only log it.
type INotifier interface {
	Notify(ctx context.Context, snapshot entities.Proposal, status entities.ProposalStatus) (bool, error)
}
