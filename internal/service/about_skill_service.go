package service

import (
	"context"
	"errors"

	"github.com/ignatzorin/portfolio-backend/internal/domain/ordering"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository/common"
)

// AboutSkillRepository описывает хранилище выбранных навыков.
// Add и Remove сами поддерживают порядок 1..n.
type AboutSkillRepository interface {
	ListSelected(ctx context.Context) ([]models.SelectedSkill, error)
	Add(ctx context.Context, skillID int64) (*models.AboutSkill, error)
	Remove(ctx context.Context, skillID int64) (bool, error)
	ReplaceOrder(ctx context.Context, placements []common.Placement) error
}

// SkillReader — чтение навыков, нужное разделу «Обо мне».
type SkillReader interface {
	List(ctx context.Context) ([]models.Skill, error)
	GetByID(ctx context.Context, id int64) (*models.Skill, error)
}

// AboutSkillsOverview — данные страницы выбора навыков.
type AboutSkillsOverview struct {
	AllSkills      []models.Skill         `json:"allSkills"`
	SelectedSkills []models.SelectedSkill `json:"selectedSkills"`
}

// SkillPlacement — позиция навыка в запросе полной перестановки.
type SkillPlacement struct {
	SkillID      int64 `json:"skillId"`
	DisplayOrder int   `json:"displayOrder"`
}

// AboutSkillService управляет упорядоченным выбором навыков для блока «Tech Stack & Expertise».
type AboutSkillService struct {
	repo   AboutSkillRepository
	skills SkillReader
}

func NewAboutSkillService(repo AboutSkillRepository, skills SkillReader) *AboutSkillService {
	return &AboutSkillService{repo: repo, skills: skills}
}

// Overview возвращает все навыки и текущий выбор.
func (s *AboutSkillService) Overview(ctx context.Context) (*AboutSkillsOverview, error) {
	all, err := s.skills.List(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	selected, err := s.Selected(ctx)
	if err != nil {
		return nil, err
	}
	return &AboutSkillsOverview{AllSkills: all, SelectedSkills: selected}, nil
}

// Selected возвращает выбранные навыки в порядке отображения.
func (s *AboutSkillService) Selected(ctx context.Context) ([]models.SelectedSkill, error) {
	selected, err := s.repo.ListSelected(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return selected, nil
}

// Select добавляет навык в конец выбора.
func (s *AboutSkillService) Select(ctx context.Context, skillID int64) ([]models.SelectedSkill, error) {
	if skillID <= 0 {
		return nil, apperror.Validation("skillId обязателен")
	}
	if _, err := s.skills.GetByID(ctx, skillID); err != nil {
		return nil, storageError(err)
	}

	selected, err := s.Selected(ctx)
	if err != nil {
		return nil, err
	}
	if ordering.IndexOf(selectionEntries(selected), skillID) >= 0 {
		return nil, apperror.ErrSkillAlreadySelected
	}

	if _, err := s.repo.Add(ctx, skillID); err != nil {
		switch {
		case errors.Is(err, common.ErrAlreadyExists):
			return nil, apperror.ErrSkillAlreadySelected
		case errors.Is(err, common.ErrReferenced):
			return nil, apperror.ErrSkillNotFound
		}
		return nil, storageError(err)
	}
	return s.Selected(ctx)
}

// Deselect убирает навык из выбора и сжимает порядок.
// Если навык не выбран, список не меняется.
func (s *AboutSkillService) Deselect(ctx context.Context, skillID int64) ([]models.SelectedSkill, error) {
	if skillID <= 0 {
		return nil, apperror.Validation("skillId обязателен")
	}
	if _, err := s.repo.Remove(ctx, skillID); err != nil {
		return nil, storageError(err)
	}
	return s.Selected(ctx)
}

// Move сдвигает выбранный навык на одну позицию. На границе списка ничего не делает.
func (s *AboutSkillService) Move(ctx context.Context, skillID int64, direction string) ([]models.SelectedSkill, error) {
	dir, err := ordering.ParseDirection(direction)
	if err != nil {
		return nil, orderingError(err)
	}

	selected, err := s.Selected(ctx)
	if err != nil {
		return nil, err
	}

	list, moved, err := ordering.Move(selectionEntries(selected), skillID, dir)
	if err != nil {
		if errors.Is(err, ordering.ErrItemNotFound) {
			return nil, apperror.ErrSkillNotSelected
		}
		return nil, orderingError(err)
	}
	if !moved {
		return selected, nil
	}

	if err := s.repo.ReplaceOrder(ctx, toPlacements(list)); err != nil {
		return nil, reorderWriteError(err)
	}
	return s.Selected(ctx)
}

// ReplaceOrder записывает полный порядок выбора. Набор навыков должен совпадать с текущим,
// позиции перенумеровываются в 1..n в запрошенном порядке.
func (s *AboutSkillService) ReplaceOrder(ctx context.Context, placements []SkillPlacement) ([]models.SelectedSkill, error) {
	selected, err := s.Selected(ctx)
	if err != nil {
		return nil, err
	}

	requested := make([]ordering.Entry, len(placements))
	for i, p := range placements {
		requested[i] = ordering.Entry{ItemID: p.SkillID, DisplayOrder: p.DisplayOrder}
	}

	normalized, err := ordering.Normalize(selectionEntries(selected), requested)
	if err != nil {
		return nil, orderingError(err)
	}

	if err := s.repo.ReplaceOrder(ctx, toPlacements(normalized)); err != nil {
		return nil, reorderWriteError(err)
	}
	return s.Selected(ctx)
}

func selectionEntries(selected []models.SelectedSkill) []ordering.Entry {
	entries := make([]ordering.Entry, len(selected))
	for i, sk := range selected {
		entries[i] = ordering.Entry{ItemID: sk.SkillID, DisplayOrder: sk.DisplayOrder}
	}
	return entries
}
