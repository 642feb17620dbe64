package models

import (
	"time"

	"github.com/lib/pq"
)

// Project — работа в разделе «Проекты».
type Project struct {
	ID           int64          `db:"id" json:"id" yaml:"-"`
	Title        string         `db:"title" json:"title" yaml:"title"`
	Slug         string         `db:"slug" json:"slug" yaml:"slug"`
	Summary      string         `db:"summary" json:"summary" yaml:"summary"`
	Description  string         `db:"description" json:"description" yaml:"description"`
	Image        string         `db:"image" json:"image" yaml:"image"`
	Tags         pq.StringArray `db:"tags" json:"tags" yaml:"tags"`
	LiveURL      *string        `db:"live_url" json:"liveUrl,omitempty" yaml:"liveUrl"`
	RepoURL      *string        `db:"repo_url" json:"repoUrl,omitempty" yaml:"repoUrl"`
	Featured     bool           `db:"featured" json:"featured" yaml:"featured"`
	DisplayOrder int            `db:"display_order" json:"displayOrder" yaml:"displayOrder"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt" yaml:"-"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updatedAt" yaml:"-"`
}

// Experience — запись в таймлайне опыта работы.
type Experience struct {
	ID           int64      `db:"id" json:"id" yaml:"-"`
	Company      string     `db:"company" json:"company" yaml:"company"`
	Role         string     `db:"role" json:"role" yaml:"role"`
	Location     string     `db:"location" json:"location" yaml:"location"`
	StartDate    time.Time  `db:"start_date" json:"startDate" yaml:"startDate"`
	EndDate      *time.Time `db:"end_date" json:"endDate,omitempty" yaml:"endDate"`
	IsCurrent    bool       `db:"is_current" json:"isCurrent" yaml:"isCurrent"`
	Description  string     `db:"description" json:"description" yaml:"description"`
	DisplayOrder int        `db:"display_order" json:"displayOrder" yaml:"displayOrder"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt" yaml:"-"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt" yaml:"-"`
}

// Testimonial — отзыв клиента или коллеги.
type Testimonial struct {
	ID           int64     `db:"id" json:"id" yaml:"-"`
	Author       string    `db:"author" json:"author" yaml:"author"`
	Role         string    `db:"role" json:"role" yaml:"role"`
	Company      string    `db:"company" json:"company" yaml:"company"`
	Quote        string    `db:"quote" json:"quote" yaml:"quote"`
	Avatar       string    `db:"avatar" json:"avatar" yaml:"avatar"`
	Rating       int       `db:"rating" json:"rating" yaml:"rating"`
	DisplayOrder int       `db:"display_order" json:"displayOrder" yaml:"displayOrder"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt" yaml:"-"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt" yaml:"-"`
}
