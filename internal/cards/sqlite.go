package cards

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

const (
	cardsQuery      = `SELECT * FROM cards`
	categoriesQuery = `SELECT card_id, category FROM card_categories`
	versionQuery    = `SELECT value FROM metadata WHERE key = 'version'`
)

// LoadSQLite reads a card database: the cards table, the card_categories
// join table and, when present, the metadata version.
func LoadSQLite(ctx context.Context, path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	records, err := queryCards(ctx, db)
	if err != nil {
		return nil, err
	}
	if err := attachCategories(ctx, db, records); err != nil {
		return nil, err
	}

	list := make([]Card, 0, len(records))
	for _, c := range records {
		list = append(list, *c)
	}
	return NewRepository(list, queryVersion(ctx, db)), nil
}

func queryCards(ctx context.Context, db *sql.DB) (map[int]*Card, error) {
	rows, err := db.QueryContext(ctx, cardsQuery)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read card columns: %w", err)
	}
	cols := make(map[string]int, len(columns))
	for i, name := range columns {
		cols[name] = i
	}

	out := make(map[int]*Card)
	values := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		get := func(name string) string {
			if idx, ok := cols[name]; ok {
				return values[idx].String
			}
			return ""
		}
		c, ok := cardFromRow(get)
		if !ok {
			continue
		}
		if _, dup := out[c.ID]; !dup {
			out[c.ID] = &c
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}
	return out, nil
}

func attachCategories(ctx context.Context, db *sql.DB, records map[int]*Card) error {
	rows, err := db.QueryContext(ctx, categoriesQuery)
	if err != nil {
		return fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var cat sql.NullString
		if err := rows.Scan(&id, &cat); err != nil {
			return fmt.Errorf("scan category: %w", err)
		}
		if c, ok := records[id]; ok && cat.Valid && cat.String != "" {
			c.Categories = append(c.Categories, cat.String)
		}
	}
	return rows.Err()
}

// queryVersion returns "" when the metadata table or key is missing.
func queryVersion(ctx context.Context, db *sql.DB) string {
	var v sql.NullString
	if err := db.QueryRowContext(ctx, versionQuery).Scan(&v); err != nil {
		return ""
	}
	return v.String
}
