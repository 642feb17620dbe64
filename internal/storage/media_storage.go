package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrTooLarge — файл превышает лимит загрузки.
var ErrTooLarge = errors.New("storage: размер файла превышает лимит")

// StoredFile описывает сохранённый файл.
type StoredFile struct {
	Name string
	Path string
	Size int64
}

// MediaStorage хранит загруженные файлы на диске и отдаёт их по публичному префиксу.
type MediaStorage struct {
	rootPath       string
	publicPrefix   string
	maxUploadBytes int64
}

// NewMediaStorage создаёт файловое хранилище.
func NewMediaStorage(rootPath, publicPrefix string, maxUploadMB int64) (*MediaStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", rootPath, err)
	}

	return &MediaStorage{
		rootPath:       rootPath,
		publicPrefix:   "/" + strings.Trim(publicPrefix, "/"),
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}, nil
}

// MaxUploadBytes возвращает лимит размера файла.
func (s *MediaStorage) MaxUploadBytes() int64 {
	return s.maxUploadBytes
}

// Root возвращает каталог с файлами.
func (s *MediaStorage) Root() string {
	return s.rootPath
}

// PublicPrefix возвращает URL-префикс, под которым раздаются файлы.
func (s *MediaStorage) PublicPrefix() string {
	return s.publicPrefix
}

// Save сохраняет файл под случайным именем и возвращает публичный путь вида /uploads/<uuid>.<ext>.
func (s *MediaStorage) Save(ctx context.Context, originalName string, r io.Reader) (*StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(sanitizeFilename(originalName)))
	fileName := uuid.NewString() + ext

	targetPath := filepath.Join(s.rootPath, fileName)
	tempPath := targetPath + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return nil, fmt.Errorf("storage: не удалось создать файл: %w", err)
	}
	defer f.Close()

	limitedReader := io.LimitedReader{R: r, N: s.maxUploadBytes + 1}
	written, err := io.Copy(f, &limitedReader)
	if err != nil {
		_ = os.Remove(tempPath)
		return nil, fmt.Errorf("storage: ошибка записи файла: %w", err)
	}

	if written > s.maxUploadBytes {
		_ = f.Close()
		_ = os.Remove(tempPath)
		return nil, fmt.Errorf("%w (%d байт)", ErrTooLarge, s.maxUploadBytes)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tempPath)
		return nil, fmt.Errorf("storage: ошибка закрытия файла: %w", err)
	}

	if err := os.Rename(tempPath, targetPath); err != nil {
		_ = os.Remove(tempPath)
		return nil, fmt.Errorf("storage: не удалось переименовать файл: %w", err)
	}

	return &StoredFile{
		Name: fileName,
		Path: path.Join(s.publicPrefix, fileName),
		Size: written,
	}, nil
}

// Delete удаляет файл по публичному пути. Отсутствующий файл не ошибка.
func (s *MediaStorage) Delete(ctx context.Context, publicPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := strings.TrimPrefix(publicPath, s.publicPrefix+"/")
	if name == "" || name == publicPath || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("storage: путь %q вне хранилища", publicPath)
	}

	target := filepath.Join(s.rootPath, name)
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: не удалось удалить файл: %w", err)
	}
	return nil
}

// sanitizeFilename удаляет потенциально опасные символы.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		name = "file"
	}
	return name
}
