package repository

import (
	"context"
	"errors"

	"skillbarter/internal/database"
	"skillbarter/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
)

type ProfileRepository interface {
	Create(ctx context.Context, p user.Profile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	// FindByUserIDs resolves profiles for a batch of owners; owners without a
	// profile are simply absent from the map.
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]user.Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Create(ctx context.Context, p user.Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (id, user_id, name, bio, location, availability, portfolio_links)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.UserID, p.Name, p.Bio, p.Location, p.Availability, p.PortfolioLinks,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrProfileExists
		}
		return err
	}
	return nil
}

func (r *PostgresProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, bio, location, availability, portfolio_links, created_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	)

	var p user.Profile
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Bio, &p.Location, &p.Availability, &p.PortfolioLinks, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]user.Profile, error) {
	out := make(map[uuid.UUID]user.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, bio, location, availability, portfolio_links, created_at
		 FROM profiles WHERE user_id = ANY($1)`,
		userIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p user.Profile
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Bio, &p.Location, &p.Availability, &p.PortfolioLinks, &p.CreatedAt); err != nil {
			return nil, err
		}
		out[p.UserID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
