package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/h2non/filetype"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// Разрешённые расширения и ожидаемый MIME тип
var allowedMediaTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".ico":  "image/vnd.microsoft.icon",
	".svg":  "image/svg+xml",
}

const sniffLen = 512

// MediaRepository описывает хранилище записей медиатеки.
type MediaRepository interface {
	Create(ctx context.Context, media *models.MediaFile) error
	GetByID(ctx context.Context, id int64) (*models.MediaFile, error)
	List(ctx context.Context) ([]models.MediaFile, error)
	UpdateAltText(ctx context.Context, id int64, altText string) (*models.MediaFile, error)
	Delete(ctx context.Context, id int64) error
}

// FileStorage сохраняет содержимое загруженных файлов.
type FileStorage interface {
	Save(ctx context.Context, originalName string, r io.Reader) (*storage.StoredFile, error)
	Delete(ctx context.Context, publicPath string) error
	MaxUploadBytes() int64
}

// UploadInput — загружаемый файл.
type UploadInput struct {
	FileName string
	Size     int64
	AltText  string
	Content  io.ReadSeeker
}

// MediaService управляет медиатекой.
type MediaService struct {
	repo    MediaRepository
	storage FileStorage
}

func NewMediaService(repo MediaRepository, storage FileStorage) *MediaService {
	return &MediaService{repo: repo, storage: storage}
}

func (s *MediaService) List(ctx context.Context) ([]models.MediaFile, error) {
	files, err := s.repo.List(ctx)
	return files, storageError(err)
}

// Upload проверяет размер, расширение и реальный тип файла, сохраняет его и создаёт запись.
func (s *MediaService) Upload(ctx context.Context, in UploadInput) (*models.MediaFile, error) {
	maxBytes := s.storage.MaxUploadBytes()
	if in.Size > maxBytes {
		return nil, tooLarge(maxBytes)
	}
	if in.Size == 0 {
		return nil, apperror.Validation("файл не может быть пустым")
	}
	if err := validation.ValidateLength("alt-текст", in.AltText, 0, validation.MaxShortTextLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}

	ext := strings.ToLower(filepath.Ext(in.FileName))
	expected, ok := allowedMediaTypes[ext]
	if !ok {
		return nil, apperror.Validation("неподдерживаемый формат файла. Разрешены: %s", strings.Join(allowedExtensions(), ", "))
	}

	header := make([]byte, sniffLen)
	n, err := io.ReadFull(in.Content, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, apperror.Validation("не удалось прочитать файл")
	}
	mimeType, err := detectMime(header[:n], expected)
	if err != nil {
		return nil, err
	}

	if mimeType == "image/svg+xml" {
		if _, err := in.Content.Seek(0, io.SeekStart); err != nil {
			return nil, apperror.Internal(fmt.Errorf("media service: seek: %w", err))
		}
		if err := checkSVGContent(in.Content, maxBytes); err != nil {
			return nil, err
		}
	}

	if _, err := in.Content.Seek(0, io.SeekStart); err != nil {
		return nil, apperror.Internal(fmt.Errorf("media service: seek: %w", err))
	}

	stored, err := s.storage.Save(ctx, in.FileName, in.Content)
	if err != nil {
		if errors.Is(err, storage.ErrTooLarge) {
			return nil, tooLarge(maxBytes)
		}
		return nil, apperror.Internal(err)
	}

	media := &models.MediaFile{
		FileName: filepath.Base(in.FileName),
		FilePath: stored.Path,
		MimeType: mimeType,
		FileSize: stored.Size,
		AltText:  strings.TrimSpace(in.AltText),
	}
	if err := s.repo.Create(ctx, media); err != nil {
		if delErr := s.storage.Delete(ctx, stored.Path); delErr != nil {
			logger.Log.WithFields(logrus.Fields{"path": stored.Path, "error": delErr.Error()}).
				Warn("media service: не удалось удалить файл после ошибки записи")
		}
		return nil, storageError(err)
	}
	return media, nil
}

// UpdateAltText меняет alt-текст файла.
func (s *MediaService) UpdateAltText(ctx context.Context, id int64, altText string) (*models.MediaFile, error) {
	if err := validation.ValidateLength("alt-текст", altText, 0, validation.MaxShortTextLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	media, err := s.repo.UpdateAltText(ctx, id, strings.TrimSpace(altText))
	if err != nil {
		return nil, storageError(err)
	}
	return media, nil
}

// Delete удаляет запись и файл. Ошибка удаления файла только логируется.
func (s *MediaService) Delete(ctx context.Context, id int64) error {
	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return storageError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return storageError(err)
	}
	if err := s.storage.Delete(ctx, media.FilePath); err != nil {
		logger.Log.WithFields(logrus.Fields{"media_id": id, "path": media.FilePath, "error": err.Error()}).
			Warn("media service: не удалось удалить файл")
	}
	return nil
}

// detectMime сверяет магические байты с ожидаемым по расширению типом.
// SVG — текстовый формат, его filetype не распознаёт.
func detectMime(header []byte, expected string) (string, error) {
	if expected == "image/svg+xml" {
		lower := bytes.ToLower(header)
		if bytes.Contains(lower, []byte("<svg")) {
			return expected, nil
		}
		return "", apperror.Validation("файл не похож на SVG изображение")
	}

	kind, err := filetype.Match(header)
	if err != nil || kind == filetype.Unknown {
		return "", apperror.Validation("не удалось определить тип файла. Разрешены только изображения")
	}
	if kind.MIME.Value != expected {
		return "", apperror.Validation("расширение файла не соответствует реальному типу (%s)", kind.MIME.Value)
	}
	return expected, nil
}

// svgActiveContent — всё, что заставляет SVG исполнять код в браузере.
var svgActiveContent = regexp.MustCompile(`(?i)<\s*script|<\s*foreignobject|javascript\s*:|\son[a-z]+\s*=`)

// checkSVGContent читает SVG целиком и отклоняет скрипты и обработчики событий.
func checkSVGContent(r io.Reader, maxBytes int64) error {
	body, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return apperror.Validation("не удалось прочитать файл")
	}
	if int64(len(body)) > maxBytes {
		return tooLarge(maxBytes)
	}
	if svgActiveContent.Match(body) {
		return apperror.Validation("SVG не должен содержать скрипты и обработчики событий")
	}
	return nil
}

func tooLarge(maxBytes int64) error {
	return apperror.New(apperror.ErrCodeTooLarge, fmt.Sprintf("файл больше %d МБ", maxBytes/(1024*1024)))
}

func allowedExtensions() []string {
	exts := make([]string, 0, len(allowedMediaTypes))
	for ext := range allowedMediaTypes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
