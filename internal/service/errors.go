package service

import (
	"errors"

	"github.com/ignatzorin/portfolio-backend/internal/domain/ordering"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// storageError пропускает AppError как есть, остальное считает внутренней ошибкой.
func storageError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.Internal(err)
}

// orderingError переводит ошибки пакета ordering в ошибки валидации.
func orderingError(err error) error {
	switch {
	case errors.Is(err, ordering.ErrInvalidDirection):
		return apperror.Validation("direction должен быть up или down")
	case errors.Is(err, ordering.ErrDuplicateItem):
		return apperror.Validation("элемент указан в порядке дважды")
	case errors.Is(err, ordering.ErrSetMismatch):
		return apperror.Validation("порядок должен содержать ровно текущие элементы списка")
	case errors.Is(err, ordering.ErrInvalidPosition):
		return apperror.Validation("displayOrder должен быть положительным")
	}
	return storageError(err)
}

// reorderWriteError: строки списка изменились между чтением и записью.
func reorderWriteError(err error) error {
	if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrAlreadyExists) {
		return apperror.Wrap(err, apperror.ErrCodeConflict, "список изменился, обновите страницу и повторите")
	}
	return storageError(err)
}

func toPlacements(entries []ordering.Entry) []common.Placement {
	placements := make([]common.Placement, len(entries))
	for i, e := range entries {
		placements[i] = common.Placement{ID: e.ItemID, DisplayOrder: e.DisplayOrder}
	}
	return placements
}

// Placement — позиция элемента в запросе полной перестановки коллекции.
type Placement struct {
	ID           int64 `json:"id"`
	DisplayOrder int   `json:"displayOrder"`
}

func placementEntries(placements []Placement) []ordering.Entry {
	entries := make([]ordering.Entry, len(placements))
	for i, p := range placements {
		entries[i] = ordering.Entry{ItemID: p.ID, DisplayOrder: p.DisplayOrder}
	}
	return entries
}

// normalizeReorder проверяет полную перестановку против текущего списка.
func normalizeReorder(current []ordering.Entry, requested []Placement) ([]common.Placement, error) {
	normalized, err := ordering.Normalize(current, placementEntries(requested))
	if err != nil {
		return nil, orderingError(err)
	}
	return toPlacements(normalized), nil
}
