package database

import (
	"context"
	"fmt"
)

// VerifySchema fails fast at startup when a table the repositories depend on
// is missing a column, which beats scattering scan errors across requests.
func VerifySchema(ctx context.Context, db DB) error {
	checks := map[string][]string{
		"users":     {"id", "email", "password_hash", "created_at"},
		"profiles":  {"id", "user_id", "name", "bio", "location", "availability", "portfolio_links", "created_at"},
		"skills":    {"id", "user_id", "kind", "category", "name", "description", "status", "created_at"},
		"exchanges": {"id", "offer_skill_id", "request_skill_id", "teacher_id", "student_id", "status", "created_at"},
		"messages":  {"id", "exchange_id", "sender_id", "content", "created_at"},
	}

	for table, columns := range checks {
		if err := ensureTableColumns(ctx, db, table, columns); err != nil {
			return err
		}
	}
	return nil
}

func ensureTableColumns(ctx context.Context, db DB, table string, columns []string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
