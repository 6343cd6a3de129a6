package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/config"
)

// NewPostgresDB создает пул соединений PostgreSQL с размерами из конфигурации
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}
	applyPoolSettings(cfgPool, appCfg)

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	// Проверяем соединение с базой данных
	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
	}

	return dbpool, nil
}

func applyPoolSettings(pool *pgxpool.Config, appCfg *config.Config) {
	if appCfg.DBMaxConns > 0 {
		pool.MaxConns = int32(appCfg.DBMaxConns)
	}
	if appCfg.DBMinConns >= 0 && appCfg.DBMinConns <= appCfg.DBMaxConns {
		pool.MinConns = int32(appCfg.DBMinConns)
	}
	if appCfg.DBConnMaxLifetime > 0 {
		pool.MaxConnLifetime = appCfg.DBConnMaxLifetime
	}
}
