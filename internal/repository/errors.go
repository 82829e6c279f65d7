// Package repository holds the store operations of the movie review
// catalog. Every exported operation runs in a single transaction on the
// *gorm.DB handle it was constructed with and reports failures through the
// sentinel errors below, which handlers map to HTTP statuses.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by natural key matches nothing.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a write violates a uniqueness constraint,
// such as a second registration with the same email.
var ErrConflict = errors.New("conflict")

// ErrBadReference is returned when an identifier supplied by the caller
// (movie, genre or user id) does not resolve to a row.
var ErrBadReference = errors.New("unresolved reference")

// ErrNotAuthenticated is returned for an unknown email and for a wrong
// password alike.
var ErrNotAuthenticated = errors.New("not authenticated")

// translate maps gorm errors onto the package sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Join(ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.Join(ErrBadReference, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	}
	return err
}

// exists reports whether a row of model's table has the given id.
func exists(tx *gorm.DB, model any, id uint) (bool, error) {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
