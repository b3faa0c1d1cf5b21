package interfaces

//go:generate mockgen -source=import_locker_interface.go -destination=mocks/import_locker_interface_mock.go -package=mock_interfaces

import "context"

// IImportLocker serializes imports of the same external id.
//
// Lock blocks until the key is acquired or ctx is done. The returned unlock func must
// be called exactly once.
type IImportLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
