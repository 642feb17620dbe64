package service

import (
	"context"

	"github.com/ignatzorin/portfolio-backend/internal/domain/ordering"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// orderedRepository — коллекция с общим полем display_order.
type orderedRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Reorder(ctx context.Context, placements []common.Placement) error
}

// reorderCollection проверяет полную перестановку против текущего списка
// и записывает её одной транзакцией.
func reorderCollection[T any](ctx context.Context, repo orderedRepository[T], placements []Placement, entry func(T) ordering.Entry) ([]T, error) {
	items, err := repo.List(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	current := make([]ordering.Entry, len(items))
	for i, item := range items {
		current[i] = entry(item)
	}

	normalized, err := normalizeReorder(current, placements)
	if err != nil {
		return nil, err
	}
	if err := repo.Reorder(ctx, normalized); err != nil {
		return nil, reorderWriteError(err)
	}

	items, err = repo.List(ctx)
	return items, storageError(err)
}
