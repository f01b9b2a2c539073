package repository

import (
	"context"
	"errors"

	"skillbarter/internal/database"
	"skillbarter/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillRepository interface {
	Create(ctx context.Context, s skill.Skill) error
	FindByID(ctx context.Context, id uuid.UUID) (skill.Skill, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error)
	// FindActiveByCategoryAndKind is the match lookup: the category index
	// narrowed by kind and active status.
	FindActiveByCategoryAndKind(ctx context.Context, category string, kind skill.Kind) ([]skill.Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s skill.Skill) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skills (id, user_id, kind, category, name, description, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.UserID, s.Kind, s.Category, s.Name, s.Description, s.Status,
	)
	return err
}

func (r *PostgresSkillRepository) FindByID(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, kind, category, name, description, status, created_at
		 FROM skills WHERE id = $1`,
		id,
	)

	var s skill.Skill
	if err := row.Scan(&s.ID, &s.UserID, &s.Kind, &s.Category, &s.Name, &s.Description, &s.Status, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	return r.querySkills(ctx,
		`SELECT id, user_id, kind, category, name, description, status, created_at
		 FROM skills WHERE user_id = $1`,
		userID,
	)
}

func (r *PostgresSkillRepository) FindActiveByCategoryAndKind(ctx context.Context, category string, kind skill.Kind) ([]skill.Skill, error) {
	return r.querySkills(ctx,
		`SELECT id, user_id, kind, category, name, description, status, created_at
		 FROM skills WHERE category = $1 AND kind = $2 AND status = $3`,
		category, kind, skill.StatusActive,
	)
}

func (r *PostgresSkillRepository) querySkills(ctx context.Context, query string, args ...any) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Kind, &s.Category, &s.Name, &s.Description, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
