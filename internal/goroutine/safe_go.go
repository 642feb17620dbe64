package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
)

// PanicHook получает имя горутины, значение паники и стек.
type PanicHook func(name string, recovered any, stack []byte)

// onPanic по умолчанию пишет в logger.Log, который может быть пересоздан в Setup.
var onPanic PanicHook = func(name string, recovered any, stack []byte) {
	logger.Component("goroutine").WithField("goroutine", name).
		WithField("panic", fmt.Sprint(recovered)).
		WithField("stack", string(stack)).
		Error("паника в фоновой горутине")
}

// SetPanicHook подменяет обработчик паник и возвращает предыдущий. Нужен в тестах.
func SetPanicHook(hook PanicHook) PanicHook {
	prev := onPanic
	onPanic = hook
	return prev
}

// SafeGo запускает fn в отдельной горутине. Паника не роняет процесс.
func SafeGo(name string, fn func()) {
	go func() {
		defer recoverAs(name)
		fn()
	}()
}

// SafeGoWithContext то же, что SafeGo, но передаёт ctx в fn.
func SafeGoWithContext(ctx context.Context, name string, fn func(context.Context)) {
	SafeGo(name, func() { fn(ctx) })
}

func recoverAs(name string) {
	if r := recover(); r != nil {
		onPanic(name, r, debug.Stack())
	}
}
