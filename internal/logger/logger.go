package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Log — общий логгер процесса. До вызова Setup пишет текстом с уровнем info.
var Log = logrus.New()

// Setup настраивает уровень и формат логов.
// В development логи текстовые и по умолчанию уровня debug, иначе JSON.
func Setup(env, level string) {
	l := logrus.New()

	dev := env == "" || strings.EqualFold(env, "development")
	if level == "" {
		level = "info"
		if dev {
			level = "debug"
		}
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if dev {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	Log = l
}

// Handler возвращает запись лога, помеченную именем обработчика.
func Handler(tag string) *logrus.Entry {
	return Log.WithField("handler", tag)
}

// Component возвращает запись лога для фоновой части приложения (ws, cleanup, cli).
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
