package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New создает логгер: JSON в проде, читаемый текст при APP_ENV=development
func New(logLevel, appEnv string) *logrus.Logger {
	log := logrus.New()

	if appEnv == "development" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg: "message",
			},
		})
	}

	log.SetOutput(os.Stdout)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
