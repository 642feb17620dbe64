package common

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Placement — пара (id, позиция) для массовой перестановки.
type Placement struct {
	ID           int64
	DisplayOrder int
}

// GetByID - универсальная функция для получения сущности по ID
func GetByID[T any](ctx context.Context, q sqlx.QueryerContext, query string, id int64, notFoundErr error) (*T, error) {
	var entity T
	if err := sqlx.GetContext(ctx, q, &entity, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFoundErr
		}
		return nil, fmt.Errorf("get by id: %w", err)
	}
	return &entity, nil
}

// DeleteByID удаляет строку и возвращает notFoundErr, если ничего не удалено.
func DeleteByID(ctx context.Context, e sqlx.ExecerContext, table string, id int64, notFoundErr error) error {
	res, err := e.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return TranslatePQ(fmt.Errorf("delete from %s: %w", table, err))
	}
	return expectAffected(res, notFoundErr)
}

// UpdateDisplayOrder одним запросом переписывает display_order у набора строк по id.
func UpdateDisplayOrder(ctx context.Context, e sqlx.ExecerContext, table string, placements []Placement) error {
	return UpdateDisplayOrderBy(ctx, e, table, "id", placements)
}

// UpdateDisplayOrderBy переписывает display_order, сопоставляя строки по keyColumn.
// Собирает VALUES ($1::bigint, $2::int), ($3::bigint, $4::int), ...
func UpdateDisplayOrderBy(ctx context.Context, e sqlx.ExecerContext, table, keyColumn string, placements []Placement) error {
	if len(placements) == 0 {
		return nil
	}

	var sb strings.Builder
	args := make([]interface{}, 0, len(placements)*2)
	for i, p := range placements {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d::bigint, $%d::int)", i*2+1, i*2+2)
		args = append(args, p.ID, p.DisplayOrder)
	}

	query := fmt.Sprintf(`
		UPDATE %s AS t SET display_order = v.ord
		FROM (VALUES %s) AS v(id, ord)
		WHERE t.%s = v.id
	`, table, sb.String(), keyColumn)

	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update display order in %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update display order in %s: %w", table, err)
	}
	if int(affected) != len(placements) {
		return fmt.Errorf("update display order in %s: %w", table, ErrNotFound)
	}
	return nil
}

// WithTransaction выполняет функцию внутри транзакции с правильной обработкой ошибок
func WithTransaction(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func expectAffected(res sql.Result, notFoundErr error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFoundErr
	}
	return nil
}
