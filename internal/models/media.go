package models

import (
	"time"
)

// MediaFile описывает загруженный в медиатеку файл.
type MediaFile struct {
	ID        int64     `db:"id" json:"id"`
	FileName  string    `db:"file_name" json:"fileName"`
	FilePath  string    `db:"file_path" json:"path"`
	MimeType  string    `db:"mime_type" json:"mimeType"`
	FileSize  int64     `db:"file_size" json:"fileSize"`
	AltText   string    `db:"alt_text" json:"altText"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Message — обращение, оставленное через форму обратной связи.
type Message struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Subject   string    `db:"subject" json:"subject"`
	Body      string    `db:"body" json:"message"`
	IsRead    bool      `db:"is_read" json:"isRead"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
