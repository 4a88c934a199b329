package utils

import (
	"errors"

	"food-donation-backend/domain"

	"github.com/gofiber/fiber/v2/log"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err comes from a unique constraint,
// whether or not the dialector translated it.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// WrapStorageError logs a persistence failure and hides it behind a
// domain.StorageError. Errors that already carry a domain kind pass through.
func WrapStorageError(op string, err error) error {
	if err == nil {
		return nil
	}

	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return err
	}
	var storageErr *domain.StorageError
	if errors.As(err, &storageErr) {
		return err
	}

	log.Errorw("storage failure", "op", op, "error", err)
	return domain.NewStorageError(op, err)
}
