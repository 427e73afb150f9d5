package gazetteer

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/mapkit/internal/geodesy"
)

// Place is one gazetteer entry.
type Place struct {
	Name  string
	State string // USPS abbreviation, may be empty
	Point geodesy.Point
}

// PlaceDistance pairs a place with its distance from a query point.
type PlaceDistance struct {
	Place
	DistanceKM float64
}

// Store is a SQLite-backed place index.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite gazetteer at the given path
// and configures WAL mode.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "gazetteer: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "gazetteer: exec %s", pragma)
		}
	}
	return &Store{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS places (
	id          TEXT PRIMARY KEY,
	batch_id    TEXT NOT NULL,
	name        TEXT NOT NULL,
	state       TEXT NOT NULL DEFAULT '',
	lon         REAL NOT NULL,
	lat         REAL NOT NULL,
	imported_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_places_name ON places(name COLLATE NOCASE);
CREATE INDEX IF NOT EXISTS idx_places_batch ON places(batch_id);
`

// Migrate creates the places table.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "gazetteer: migrate")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Import inserts places in one batch and returns the batch ID and the
// number of rows written.
func (s *Store) Import(ctx context.Context, places []Place) (string, int, error) {
	if len(places) == 0 {
		return "", 0, eris.New("gazetteer: nothing to import")
	}

	batchID := uuid.New().String()
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", 0, eris.Wrap(err, "gazetteer: begin import")
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO places (id, batch_id, name, state, lon, lat, imported_at) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", 0, eris.Wrap(err, "gazetteer: prepare insert")
	}
	defer stmt.Close()

	for _, p := range places {
		if strings.TrimSpace(p.Name) == "" {
			return "", 0, eris.New("gazetteer: place with empty name")
		}
		_, err := stmt.ExecContext(ctx,
			uuid.New().String(), batchID, p.Name, strings.ToUpper(p.State), p.Point.Lon, p.Point.Lat, now)
		if err != nil {
			return "", 0, eris.Wrapf(err, "gazetteer: insert %q", p.Name)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", 0, eris.Wrap(err, "gazetteer: commit import")
	}
	return batchID, len(places), nil
}

// Lookup resolves a place by name, case-insensitively. A trailing
// ", XX" state qualifier narrows the match.
func (s *Store) Lookup(ctx context.Context, name string) (*Place, error) {
	name = strings.TrimSpace(name)
	state := ""
	if i := strings.LastIndex(name, ","); i >= 0 {
		if abbr, ok := StateAbbr(name[i+1:]); ok {
			state = abbr
			name = strings.TrimSpace(name[:i])
		}
	}

	query := `SELECT name, state, lon, lat FROM places WHERE name = ? COLLATE NOCASE`
	args := []any{name}
	if state != "" {
		query += ` AND state = ?`
		args = append(args, state)
	}
	query += ` LIMIT 1`

	var p Place
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&p.Name, &p.State, &p.Point.Lon, &p.Point.Lat)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, eris.Errorf("gazetteer: place %q not found", name)
		}
		return nil, eris.Wrapf(err, "gazetteer: lookup %q", name)
	}
	return &p, nil
}

// Near returns the k places closest to pt by great-circle distance.
func (s *Store) Near(ctx context.Context, pt geodesy.Point, k int) ([]PlaceDistance, error) {
	if k <= 0 {
		k = 5
	}

	rows, err := s.db.QueryContext(ctx, `SELECT name, state, lon, lat FROM places`)
	if err != nil {
		return nil, eris.Wrap(err, "gazetteer: query places")
	}
	defer rows.Close()

	var results []PlaceDistance
	for rows.Next() {
		var p Place
		if err := rows.Scan(&p.Name, &p.State, &p.Point.Lon, &p.Point.Lat); err != nil {
			return nil, eris.Wrap(err, "gazetteer: scan place")
		}
		results = append(results, PlaceDistance{
			Place:      p,
			DistanceKM: geodesy.HaversineKM(pt, p.Point),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "gazetteer: iterate places")
	}

	sort.Slice(results, func(i, j int) bool { return results[i].DistanceKM < results[j].DistanceKM })
	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}
