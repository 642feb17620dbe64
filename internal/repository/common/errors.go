package common

import (
	"errors"

	"github.com/lib/pq"
)

// Общие ошибки для всех репозиториев
var (
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")
	ErrReferenced    = errors.New("entity is referenced")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// TranslatePQ превращает нарушения ограничений Postgres в общие ошибки репозитория.
func TranslatePQ(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch string(pqErr.Code) {
	case pqUniqueViolation:
		return errors.Join(ErrAlreadyExists, err)
	case pqForeignKeyViolation:
		return errors.Join(ErrReferenced, err)
	}
	return err
}
