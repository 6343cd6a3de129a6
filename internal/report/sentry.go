package report

import (
	"fmt"
	"runtime"
	"time"

	"github.com/getsentry/sentry-go"
)

// SetupSentry инициализирует клиент Sentry; пустой DSN отключает отправку
func SetupSentry(dsn, env string) error {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
	}); err != nil {
		return fmt.Errorf("sentry.Init: %w", err)
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("go_version", runtime.Version())
	})
	return nil
}

// FlushSentry дожидается отправки накопленных событий
func FlushSentry() {
	sentry.Flush(2 * time.Second)
}

// ReportError отправляет ошибку в Sentry с дополнительными тегами
func ReportError(err error, tags map[string]string) {
	if err == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}
