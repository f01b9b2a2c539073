package repository

import (
	"context"

	"skillbarter/internal/database"
	"skillbarter/internal/domain/exchange"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, m exchange.Message) error
	// FindByExchangeID returns the exchange's messages in creation order.
	FindByExchangeID(ctx context.Context, exchangeID uuid.UUID) ([]exchange.Message, error)
}

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) Create(ctx context.Context, m exchange.Message) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO messages (id, exchange_id, sender_id, content) VALUES ($1, $2, $3, $4)`,
		m.ID, m.ExchangeID, m.SenderID, m.Content,
	)
	return err
}

func (r *PostgresMessageRepository) FindByExchangeID(ctx context.Context, exchangeID uuid.UUID) ([]exchange.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, exchange_id, sender_id, content, created_at
		 FROM messages WHERE exchange_id = $1
		 ORDER BY created_at ASC, id ASC`,
		exchangeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]exchange.Message, 0)
	for rows.Next() {
		var m exchange.Message
		if err := rows.Scan(&m.ID, &m.ExchangeID, &m.SenderID, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
