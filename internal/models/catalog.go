package models

import (
	"time"
)

// SkillCategory группирует навыки на странице «Навыки».
type SkillCategory struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Slug         string    `db:"slug" json:"slug"`
	Description  *string   `db:"description" json:"description,omitempty"`
	Icon         *string   `db:"icon" json:"icon,omitempty"`
	DisplayOrder int       `db:"display_order" json:"displayOrder"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Skill описывает навык с уровнем владения 0..100.
// Category — slug категории, вычисляется из category_id при чтении.
type Skill struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Level        int       `db:"level" json:"level"`
	Icon         string    `db:"icon" json:"icon"`
	CategoryID   *int64    `db:"category_id" json:"categoryId,omitempty"`
	Category     string    `db:"category" json:"category"`
	DisplayOrder int       `db:"display_order" json:"displayOrder"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// AboutSkill — строка выбора навыка для блока «Tech Stack & Expertise».
type AboutSkill struct {
	ID           int64 `db:"id" json:"aboutSkillId"`
	SkillID      int64 `db:"skill_id" json:"skillId"`
	DisplayOrder int   `db:"display_order" json:"displayOrder"`
}

// SelectedSkill — выбранный навык вместе с данными самого навыка.
type SelectedSkill struct {
	AboutSkillID int64  `db:"about_skill_id" json:"aboutSkillId"`
	SkillID      int64  `db:"skill_id" json:"skillId"`
	DisplayOrder int    `db:"display_order" json:"displayOrder"`
	Name         string `db:"name" json:"name"`
	Level        int    `db:"level" json:"level"`
	Icon         string `db:"icon" json:"icon"`
	Category     string `db:"category" json:"category"`
}
