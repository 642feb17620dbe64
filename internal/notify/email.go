// Package notify отправляет владельцу сайта письма о новых обращениях.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// Notifier сообщает о новом сообщении из формы обратной связи.
type Notifier interface {
	NotifyNewMessage(ctx context.Context, msg *models.Message) error
}

type resendNotifier struct {
	client    *resend.Client
	fromEmail string
	toEmail   string
	siteURL   string
}

// NewResendNotifier создаёт Notifier поверх Resend API.
func NewResendNotifier(apiKey, fromEmail, toEmail, siteURL string) Notifier {
	return &resendNotifier{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		toEmail:   toEmail,
		siteURL:   strings.TrimRight(siteURL, "/"),
	}
}

func (n *resendNotifier) NotifyNewMessage(ctx context.Context, msg *models.Message) error {
	subject, html, err := renderMessageEmail(msg, n.siteURL)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Portfolio <%s>", n.fromEmail),
		To:      []string{n.toEmail},
		ReplyTo: msg.Email,
		Subject: subject,
		Html:    html,
	}

	if _, err := n.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("notify: не удалось отправить письмо: %w", err)
	}
	return nil
}

type noopNotifier struct{}

// Noop возвращает Notifier, который ничего не отправляет (RESEND_API_KEY не задан).
func Noop() Notifier {
	return noopNotifier{}
}

func (noopNotifier) NotifyNewMessage(context.Context, *models.Message) error {
	return nil
}

var messageTemplate = template.Must(template.New("message").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family:Arial,Helvetica,sans-serif;background:#f8fafc;padding:24px;">
  <h2 style="margin:0 0 16px 0;">Новое сообщение с сайта</h2>
  <p><strong>От:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
  {{if .Subject}}<p><strong>Тема:</strong> {{.Subject}}</p>{{end}}
  <p style="white-space:pre-wrap;">{{.Body}}</p>
  {{if .AdminURL}}<p><a href="{{.AdminURL}}">Открыть в админке</a></p>{{end}}
</body>
</html>`))

// renderMessageEmail собирает тему и HTML письма. Текст пользователя экранируется шаблоном.
func renderMessageEmail(msg *models.Message, siteURL string) (string, string, error) {
	subject := "Новое сообщение от " + msg.Name
	if msg.Subject != "" {
		subject += ": " + msg.Subject
	}

	data := struct {
		Name, Email, Subject, Body, AdminURL string
	}{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Body:    msg.Body,
	}
	if siteURL != "" {
		data.AdminURL = fmt.Sprintf("%s/admin/messages/%d", siteURL, msg.ID)
	}

	var buf bytes.Buffer
	if err := messageTemplate.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("notify: шаблон письма: %w", err)
	}
	return subject, buf.String(), nil
}
