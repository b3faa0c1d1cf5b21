package repository

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fluxo_propostas/internal/usecase/interfaces"
)

// translateError maps driver errors onto the port-level sentinels.
// The DB must be opened with TranslateError enabled for gorm.ErrDuplicatedKey.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Join(interfaces.ErrDuplicateKey, err)
	}
	// Fallback for drivers without a translator.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key") {
		return errors.Join(interfaces.ErrDuplicateKey, err)
	}
	return err
}

// notFound reports whether err is gorm's record-not-found, which repositories turn
// into a zero-value entity.
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func ensureID(id string) string {
	if id != "" {
		return id
	}
	return newID()
}

// newID returns a time-ordered UUID so rows inserted in the same instant still sort
// by insertion.
func newID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
