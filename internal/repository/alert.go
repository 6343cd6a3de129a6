package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

const alertColumns = `
	id, type, sender_username, sender_tourist_id, date_time, location, details,
	missing_name, missing_tourist_id, missing_last_seen
`

// Create сохраняет тревогу и заполняет ее ID
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (
			type, sender_username, sender_tourist_id, date_time, location, details,
			missing_name, missing_tourist_id, missing_last_seen
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		alert.Type,
		alert.SenderUsername,
		alert.SenderTouristID,
		alert.DateTime,
		alert.Location,
		alert.Details,
		alert.MissingName,
		alert.MissingTouristID,
		alert.MissingLastSeen,
	).Scan(&alert.ID)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

func (r *AlertRepository) List(ctx context.Context) ([]*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts ORDER BY id ASC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return collectAlerts(rows)
}

// ListBySenderUsername возвращает тревоги отправителя в порядке создания
func (r *AlertRepository) ListBySenderUsername(ctx context.Context, username string) ([]*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE sender_username = $1 ORDER BY id ASC;`
	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts by sender: %w", err)
	}
	return collectAlerts(rows)
}

func collectAlerts(rows pgx.Rows) ([]*models.Alert, error) {
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert := &models.Alert{}
		err := rows.Scan(
			&alert.ID,
			&alert.Type,
			&alert.SenderUsername,
			&alert.SenderTouristID,
			&alert.DateTime,
			&alert.Location,
			&alert.Details,
			&alert.MissingName,
			&alert.MissingTouristID,
			&alert.MissingLastSeen,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return alerts, nil
}
