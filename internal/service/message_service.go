package service

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-backend/internal/goroutine"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/notify"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
	"github.com/ignatzorin/portfolio-backend/internal/ws"
)

const (
	defaultMessagesLimit = 50
	maxMessagesLimit     = 200
	notifyTimeout        = 10 * time.Second
)

// MessageRepository описывает хранилище сообщений.
type MessageRepository interface {
	Create(ctx context.Context, m *models.Message) error
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	List(ctx context.Context, filter repository.MessageFilter) ([]models.Message, error)
	CountUnread(ctx context.Context) (int, error)
	SetRead(ctx context.Context, id int64, read bool) (*models.Message, error)
	Delete(ctx context.Context, id int64) error
}

// Broadcaster рассылает события подключённым администраторам.
type Broadcaster interface {
	Broadcast(event string, data any) error
}

// ContactInput — данные формы обратной связи.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// MessageList — страница сообщений и счётчик непрочитанных.
type MessageList struct {
	Items  []models.Message `json:"items"`
	Unread int              `json:"unread"`
}

// MessageService принимает обращения и отдаёт их в админку.
type MessageService struct {
	repo     MessageRepository
	hub      Broadcaster
	notifier notify.Notifier
	async    func(name string, fn func())
}

func NewMessageService(repo MessageRepository, hub Broadcaster, notifier notify.Notifier) *MessageService {
	if notifier == nil {
		notifier = notify.Noop()
	}
	return &MessageService{
		repo:     repo,
		hub:      hub,
		notifier: notifier,
		async:    goroutine.SafeGo,
	}
}

// Submit сохраняет сообщение и асинхронно оповещает администратора.
func (s *MessageService) Submit(ctx context.Context, in ContactInput) (*models.Message, error) {
	msg := &models.Message{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Subject: strings.TrimSpace(in.Subject),
		Body:    strings.TrimSpace(in.Body),
	}

	if err := validation.ValidateRequired("имя", msg.Name, validation.MaxNameLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateEmail(msg.Email); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateLength("тема", msg.Subject, 0, validation.MaxTitleLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}
	if err := validation.ValidateRequired("сообщение", msg.Body, validation.MaxMessageBodyLength); err != nil {
		return nil, apperror.Validation("%s", err.Error())
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, storageError(err)
	}

	created := *msg
	s.async("message-announce", func() { s.announce(&created) })
	return msg, nil
}

func (s *MessageService) announce(msg *models.Message) {
	log := logger.Log.WithFields(logrus.Fields{"message_id": msg.ID})

	if s.hub != nil {
		if err := s.hub.Broadcast(ws.EventMessageCreated, msg); err != nil {
			log.WithField("error", err.Error()).Warn("message service: не удалось разослать событие")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	if err := s.notifier.NotifyNewMessage(ctx, msg); err != nil {
		log.WithField("error", err.Error()).Warn("message service: не удалось отправить письмо")
	}
}

// List возвращает сообщения, новые первыми.
func (s *MessageService) List(ctx context.Context, unreadOnly bool, limit, offset int) (*MessageList, error) {
	if limit <= 0 {
		limit = defaultMessagesLimit
	}
	if limit > maxMessagesLimit {
		limit = maxMessagesLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.repo.List(ctx, repository.MessageFilter{UnreadOnly: unreadOnly, Limit: limit, Offset: offset})
	if err != nil {
		return nil, storageError(err)
	}
	unread, err := s.repo.CountUnread(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return &MessageList{Items: items, Unread: unread}, nil
}

func (s *MessageService) Get(ctx context.Context, id int64) (*models.Message, error) {
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	return msg, nil
}

// UnreadCount возвращает количество непрочитанных сообщений.
func (s *MessageService) UnreadCount(ctx context.Context) (int, error) {
	count, err := s.repo.CountUnread(ctx)
	return count, storageError(err)
}

// MarkRead помечает сообщение прочитанным или непрочитанным.
func (s *MessageService) MarkRead(ctx context.Context, id int64, read bool) (*models.Message, error) {
	msg, err := s.repo.SetRead(ctx, id, read)
	if err != nil {
		return nil, storageError(err)
	}
	return msg, nil
}

func (s *MessageService) Delete(ctx context.Context, id int64) error {
	return storageError(s.repo.Delete(ctx, id))
}
