// Package archive stores imported games so earlier sessions can be
// reopened. It sits outside the replay core; the engine never depends on it.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

var ErrDuplicateGame = errors.New("game already archived")

// Record is one archived game: the generated game identity, its tag
// metadata, and the serialized PGN document.
type Record struct {
	ID         string
	Event      string
	Site       string
	Date       string
	Round      string
	White      string
	Black      string
	Result     string
	PGN        string
	ImportedAt time.Time
}

type Repository interface {
	SaveGame(ctx context.Context, rec *Record) error
	RecentGames(ctx context.Context, limit int) ([]*Record, error)
	GetGame(ctx context.Context, id string) (*Record, error)
}

type repository struct {
	db *sql.DB
}

// NewRepository opens a Postgres-backed archive and verifies connectivity.
func NewRepository(databaseURL string) (Repository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &repository{db: db}, nil
}

func (r *repository) SaveGame(ctx context.Context, rec *Record) error {
	if rec == nil {
		return fmt.Errorf("nil archive record")
	}

	const query = `
		INSERT INTO archived_games (
			id,
			event,
			site,
			game_date,
			round,
			white,
			black,
			result,
			pgn,
			imported_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING
		RETURNING id`

	var id sql.NullString
	err := r.db.QueryRowContext(
		ctx,
		query,
		rec.ID,
		rec.Event,
		rec.Site,
		rec.Date,
		rec.Round,
		rec.White,
		rec.Black,
		rec.Result,
		rec.PGN,
		rec.ImportedAt,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !id.Valid) {
		return ErrDuplicateGame
	}
	if err != nil {
		return fmt.Errorf("insert archived game: %w", err)
	}
	return nil
}

func (r *repository) RecentGames(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
		SELECT id, event, site, game_date, round, white, black, result, pgn, imported_at
		FROM archived_games
		ORDER BY imported_at DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("select archived games: %w", err)
	}
	defer rows.Close()

	records := make([]*Record, 0, limit)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID,
			&rec.Event,
			&rec.Site,
			&rec.Date,
			&rec.Round,
			&rec.White,
			&rec.Black,
			&rec.Result,
			&rec.PGN,
			&rec.ImportedAt,
		); err != nil {
			return nil, fmt.Errorf("scan archived game: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (r *repository) GetGame(ctx context.Context, id string) (*Record, error) {
	const query = `
		SELECT id, event, site, game_date, round, white, black, result, pgn, imported_at
		FROM archived_games
		WHERE id = $1`

	var rec Record
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.Event,
		&rec.Site,
		&rec.Date,
		&rec.Round,
		&rec.White,
		&rec.Black,
		&rec.Result,
		&rec.PGN,
		&rec.ImportedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select archived game: %w", err)
	}
	return &rec, nil
}
