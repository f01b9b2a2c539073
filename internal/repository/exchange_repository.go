package repository

import (
	"context"
	"errors"

	"skillbarter/internal/database"
	"skillbarter/internal/domain/exchange"
	"skillbarter/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrExchangeNotFound = errors.New("exchange not found")
	// ErrSkillUnavailable means one of the two listings was no longer active
	// when the conditional patch ran, typically a concurrent match.
	ErrSkillUnavailable = errors.New("skill no longer active")
)

type ExchangeRepository interface {
	// Initiate inserts the exchange and flips both listings to matched in a
	// single transaction. Either listing not being active anymore aborts the
	// whole operation with ErrSkillUnavailable.
	Initiate(ctx context.Context, e exchange.Exchange) error
	FindByID(ctx context.Context, id uuid.UUID) (exchange.Exchange, error)
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]exchange.Exchange, error)
}

type PostgresExchangeRepository struct {
	db database.DB
}

func NewPostgresExchangeRepository(db database.DB) *PostgresExchangeRepository {
	return &PostgresExchangeRepository{db: db}
}

func (r *PostgresExchangeRepository) Initiate(ctx context.Context, e exchange.Exchange) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx,
		`INSERT INTO exchanges (id, offer_skill_id, request_skill_id, teacher_id, student_id, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.OfferSkillID, e.RequestSkillID, e.TeacherID, e.StudentID, e.Status,
	); err != nil {
		return err
	}

	for _, skillID := range []uuid.UUID{e.OfferSkillID, e.RequestSkillID} {
		affected, err := tx.Exec(ctx,
			`UPDATE skills SET status = $1 WHERE id = $2 AND status = $3`,
			skill.StatusMatched, skillID, skill.StatusActive,
		)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrSkillUnavailable
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresExchangeRepository) FindByID(ctx context.Context, id uuid.UUID) (exchange.Exchange, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, offer_skill_id, request_skill_id, teacher_id, student_id, status, created_at
		 FROM exchanges WHERE id = $1`,
		id,
	)

	var e exchange.Exchange
	if err := row.Scan(&e.ID, &e.OfferSkillID, &e.RequestSkillID, &e.TeacherID, &e.StudentID, &e.Status, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return exchange.Exchange{}, ErrExchangeNotFound
		}
		return exchange.Exchange{}, err
	}
	return e, nil
}

func (r *PostgresExchangeRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]exchange.Exchange, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, offer_skill_id, request_skill_id, teacher_id, student_id, status, created_at
		 FROM exchanges WHERE teacher_id = $1 OR student_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]exchange.Exchange, 0)
	for rows.Next() {
		var e exchange.Exchange
		if err := rows.Scan(&e.ID, &e.OfferSkillID, &e.RequestSkillID, &e.TeacherID, &e.StudentID, &e.Status, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
