// Package ordering поддерживает плотный порядок 1..n для небольших упорядоченных списков
// (выбранные навыки, проекты, опыт, отзывы).
package ordering

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Direction задаёт направление сдвига на одну позицию.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

var (
	ErrInvalidDirection = errors.New("ordering: направление должно быть up или down")
	ErrItemNotFound     = errors.New("ordering: элемент отсутствует в списке")
	ErrDuplicateItem    = errors.New("ordering: элемент уже присутствует в списке")
	ErrSetMismatch      = errors.New("ordering: набор элементов не совпадает с текущим")
	ErrInvalidPosition  = errors.New("ordering: позиция должна быть положительной")
)

// Entry — элемент упорядоченного списка.
type Entry struct {
	ItemID       int64
	DisplayOrder int
}

// ParseDirection разбирает направление из запроса.
func ParseDirection(raw string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(raw))) {
	case Up:
		return Up, nil
	case Down:
		return Down, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, raw)
}

// Sorted возвращает копию списка, отсортированную по позиции (при равенстве — по id).
func Sorted(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ItemID < out[j].ItemID
	})
	return out
}

// Renumber присваивает позиции 1..n в текущем порядке среза.
func Renumber(entries []Entry) []Entry {
	for i := range entries {
		entries[i].DisplayOrder = i + 1
	}
	return entries
}

// IndexOf возвращает индекс элемента или -1.
func IndexOf(entries []Entry, itemID int64) int {
	for i, e := range entries {
		if e.ItemID == itemID {
			return i
		}
	}
	return -1
}

// Append добавляет элемент в конец списка: позиция = количество + 1.
func Append(entries []Entry, itemID int64) ([]Entry, error) {
	list := Renumber(Sorted(entries))
	if IndexOf(list, itemID) >= 0 {
		return nil, ErrDuplicateItem
	}
	return append(list, Entry{ItemID: itemID, DisplayOrder: len(list) + 1}), nil
}

// Remove удаляет элемент и сжимает порядок. Отсутствующий элемент не ошибка:
// список возвращается без изменений, removed = false.
func Remove(entries []Entry, itemID int64) (list []Entry, removed bool) {
	list = Sorted(entries)
	idx := IndexOf(list, itemID)
	if idx < 0 {
		return Renumber(list), false
	}
	list = append(list[:idx], list[idx+1:]...)
	return Renumber(list), true
}

// Move меняет элемент местами с соседним. На границе списка ничего не делает
// и возвращает moved = false.
func Move(entries []Entry, itemID int64, dir Direction) (list []Entry, moved bool, err error) {
	if dir != Up && dir != Down {
		return nil, false, ErrInvalidDirection
	}

	list = Sorted(entries)
	idx := IndexOf(list, itemID)
	if idx < 0 {
		return nil, false, ErrItemNotFound
	}

	target := idx - 1
	if dir == Down {
		target = idx + 1
	}
	if target < 0 || target >= len(list) {
		return Renumber(list), false, nil
	}

	list[idx], list[target] = list[target], list[idx]
	return Renumber(list), true, nil
}

// Normalize проверяет запрос на полную перестановку: те же элементы, что и в current,
// без повторов и с положительными позициями. Результат упорядочен по запрошенным
// позициям и перенумерован 1..n.
func Normalize(current, requested []Entry) ([]Entry, error) {
	if len(current) != len(requested) {
		return nil, ErrSetMismatch
	}

	known := make(map[int64]struct{}, len(current))
	for _, e := range current {
		known[e.ItemID] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(requested))
	for _, e := range requested {
		if e.DisplayOrder <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidPosition, e.DisplayOrder)
		}
		if _, ok := seen[e.ItemID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateItem, e.ItemID)
		}
		if _, ok := known[e.ItemID]; !ok {
			return nil, fmt.Errorf("%w: %d", ErrSetMismatch, e.ItemID)
		}
		seen[e.ItemID] = struct{}{}
	}

	return Renumber(Sorted(requested)), nil
}

// IsContiguous сообщает, образуют ли позиции ровно {1..n} без повторов.
func IsContiguous(entries []Entry) bool {
	seen := make([]bool, len(entries)+1)
	for _, e := range entries {
		if e.DisplayOrder < 1 || e.DisplayOrder > len(entries) || seen[e.DisplayOrder] {
			return false
		}
		seen[e.DisplayOrder] = true
	}
	return true
}
