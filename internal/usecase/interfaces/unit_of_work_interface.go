package interfaces

//go:generate mockgen -source=unit_of_work_interface.go -destination=mocks/unit_of_work_interface_mock.go -package=mock_interfaces

import "context"

// IUnitOfWork runs fn inside one store transaction. The transaction travels in the
// context handed to fn; repositories called with that context join it. Nested calls
// join the outer transaction.
type IUnitOfWork interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
