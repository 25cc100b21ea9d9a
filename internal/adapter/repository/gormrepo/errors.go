package gormrepo

import (
	"errors"

	"lendhub-backend/internal/domain/errs"

	"gorm.io/gorm"
)

// storeErr maps gorm errors onto the domain taxonomy.
func storeErr(op, notFoundMsg string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound(notFoundMsg)
	}
	return errs.Store(op, err)
}
