package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/KasumiMercury/tombola-prize-allocation/internal/domain"
)

const timeFormat = time.RFC3339Nano

// schema is applied idempotently at Open. The UNIQUE constraint on
// outcomes.entry_id is the enforcement mechanism for the one-outcome-
// per-entry invariant; InsertOutcome relies on it rather than on a
// read-then-write sequence.
const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	phone TEXT NOT NULL,
	expiry_month TEXT NOT NULL,
	insurance_company TEXT NOT NULL,
	city TEXT NOT NULL,
	district TEXT NOT NULL,
	intermediary TEXT NOT NULL DEFAULT '',
	zone TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS outcomes (
	entry_id TEXT NOT NULL UNIQUE REFERENCES entries(id),
	prize TEXT NOT NULL,
	day TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_outcomes_day_prize ON outcomes(day, prize);
`

// Store is a SQLite-backed allocation ledger.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the ledger database at path, creating the schema if
// needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("ledger path is required")
	}

	cleanPath := filepath.Clean(path)
	// modernc.org/sqlite only honors _pragma-style DSN parameters; the
	// busy timeout is what keeps concurrent spins from surfacing
	// SQLITE_BUSY instead of losing the insert race cleanly.
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply ledger schema: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ping reports whether the underlying database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

func (s *Store) CreateEntry(ctx context.Context, entry *domain.Entry) error {
	if entry == nil || entry.ID == "" {
		return ErrInvalidEntryData
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO entries (id, name, phone, expiry_month, insurance_company, city, district, intermediary, zone, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Name, entry.Phone, entry.ExpiryMonth, entry.InsuranceCompany,
		entry.City, entry.District, entry.Intermediary, entry.Zone,
		createdAt.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}

	return nil
}

func (s *Store) EntryExists(ctx context.Context, entryID string) (bool, error) {
	var one int
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT 1 FROM entries WHERE id = ?`, entryID,
	).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("query entry: %w", err)
	}
	return true, nil
}

func (s *Store) FindOutcome(ctx context.Context, entryID string) (*domain.Outcome, error) {
	var (
		outcome   domain.Outcome
		createdAt string
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT entry_id, prize, day, created_at FROM outcomes WHERE entry_id = ?`, entryID,
	).Scan(&outcome.EntryID, &outcome.Prize, &outcome.Day, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOutcomeNotFound
		}
		return nil, fmt.Errorf("query outcome: %w", err)
	}

	outcome.CreatedAt, err = time.Parse(timeFormat, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse outcome timestamp: %w", err)
	}

	return &outcome, nil
}

// InsertOutcome commits an outcome as a guarded insert. When an
// outcome already exists for the entry the UNIQUE constraint fires and
// domain.ErrOutcomeExists is returned; the row is left untouched.
func (s *Store) InsertOutcome(ctx context.Context, outcome *domain.Outcome) error {
	if outcome == nil || outcome.EntryID == "" {
		return ErrInvalidOutcomeData
	}

	createdAt := outcome.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO outcomes (entry_id, prize, day, created_at) VALUES (?, ?, ?, ?)`,
		outcome.EntryID, outcome.Prize, outcome.Day, createdAt.Format(timeFormat),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrOutcomeExists
		}
		return fmt.Errorf("insert outcome: %w", err)
	}

	return nil
}

func (s *Store) UsageForDay(ctx context.Context, day string) (map[string]int, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT prize, COUNT(*) FROM outcomes WHERE day = ? GROUP BY prize`, day,
	)
	if err != nil {
		return nil, fmt.Errorf("query daily usage: %w", err)
	}
	defer rows.Close()

	usage := make(map[string]int)
	for rows.Next() {
		var (
			prize string
			count int
		)
		if err := rows.Scan(&prize, &count); err != nil {
			return nil, fmt.Errorf("scan daily usage: %w", err)
		}
		usage[prize] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily usage: %w", err)
	}

	return usage, nil
}

func (s *Store) ListEntryRecords(ctx context.Context) ([]domain.EntryRecord, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT e.id, e.name, e.phone, e.expiry_month, e.insurance_company, e.city, e.district, e.intermediary, e.zone, e.created_at,
		        o.prize, o.day, o.created_at
		 FROM entries e
		 LEFT JOIN outcomes o ON o.entry_id = e.id
		 ORDER BY e.created_at DESC, e.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query entry records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.EntryRecord, 0)
	for rows.Next() {
		var (
			record           domain.EntryRecord
			entryCreatedAt   string
			prize, day       sql.NullString
			outcomeCreatedAt sql.NullString
		)
		if err := rows.Scan(
			&record.Entry.ID, &record.Entry.Name, &record.Entry.Phone,
			&record.Entry.ExpiryMonth, &record.Entry.InsuranceCompany,
			&record.Entry.City, &record.Entry.District,
			&record.Entry.Intermediary, &record.Entry.Zone, &entryCreatedAt,
			&prize, &day, &outcomeCreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan entry record: %w", err)
		}

		record.Entry.CreatedAt, err = time.Parse(timeFormat, entryCreatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse entry timestamp: %w", err)
		}

		if prize.Valid {
			outcome := &domain.Outcome{
				EntryID: record.Entry.ID,
				Prize:   prize.String,
				Day:     day.String,
			}
			if outcomeCreatedAt.Valid {
				outcome.CreatedAt, err = time.Parse(timeFormat, outcomeCreatedAt.String)
				if err != nil {
					return nil, fmt.Errorf("parse outcome timestamp: %w", err)
				}
			}
			record.Outcome = outcome
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entry records: %w", err)
	}

	return records, nil
}

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

var _ domain.AllocationLedger = (*Store)(nil)
