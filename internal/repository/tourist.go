package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

type TouristRepository struct {
	db *pgxpool.Pool
}

func NewTouristRepository(db *pgxpool.Pool) service.TouristRepository {
	return &TouristRepository{db: db}
}

const touristColumns = `id, tourist_id, name, username, password, latitude, longitude`

// Create сохраняет нового туриста; дубликат tourist_id или username дает ErrConflict
func (r *TouristRepository) Create(ctx context.Context, tourist *models.Tourist) error {
	query := `
		INSERT INTO tourists (tourist_id, name, username, password, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		tourist.TouristID,
		tourist.Name,
		tourist.Username,
		tourist.Password,
		tourist.Latitude,
		tourist.Longitude,
	).Scan(&tourist.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("tourist %q: %w", tourist.Username, service.ErrConflict)
		}
		return fmt.Errorf("failed to create tourist: %w", err)
	}
	return nil
}

// Update перезаписывает изменяемые поля туриста
func (r *TouristRepository) Update(ctx context.Context, tourist *models.Tourist) error {
	query := `
		UPDATE tourists SET
			name = $1,
			password = $2,
			latitude = $3,
			longitude = $4,
			updated_at = NOW()
		WHERE id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		tourist.Name,
		tourist.Password,
		tourist.Latitude,
		tourist.Longitude,
		tourist.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update tourist: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("tourist with id %d: %w", tourist.ID, service.ErrNotFound)
	}
	return nil
}

func (r *TouristRepository) GetByID(ctx context.Context, id int64) (*models.Tourist, error) {
	query := `SELECT ` + touristColumns + ` FROM tourists WHERE id = $1;`
	tourist, err := scanTourist(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("tourist with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tourist by id: %w", err)
	}
	return tourist, nil
}

func (r *TouristRepository) GetByUsername(ctx context.Context, username string) (*models.Tourist, error) {
	query := `SELECT ` + touristColumns + ` FROM tourists WHERE username = $1;`
	tourist, err := scanTourist(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("tourist %q: %w", username, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tourist by username: %w", err)
	}
	return tourist, nil
}

// List возвращает всех туристов в порядке регистрации
func (r *TouristRepository) List(ctx context.Context) ([]*models.Tourist, error) {
	query := `SELECT ` + touristColumns + ` FROM tourists ORDER BY id ASC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tourists: %w", err)
	}
	defer rows.Close()

	tourists := make([]*models.Tourist, 0)
	for rows.Next() {
		tourist, err := scanTourist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tourist row: %w", err)
		}
		tourists = append(tourists, tourist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return tourists, nil
}

func scanTourist(row pgx.Row) (*models.Tourist, error) {
	tourist := &models.Tourist{}
	err := row.Scan(
		&tourist.ID,
		&tourist.TouristID,
		&tourist.Name,
		&tourist.Username,
		&tourist.Password,
		&tourist.Latitude,
		&tourist.Longitude,
	)
	if err != nil {
		return nil, err
	}
	return tourist, nil
}
