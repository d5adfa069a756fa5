package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq" // Untuk QuoteIdentifier / QuoteLiteral
)

const (
	pgUndefinedTable  = "42P01"
	pgDuplicateTable  = "42P07"
	pgUniqueViolation = "23505"
)

// postgresStore keeps one table per collection with the record in a JSONB
// column. Tables are created by the first insert.
type postgresStore struct {
	db     *sql.DB
	name   string
	tables sync.Map // collection -> struct{}, tables known to exist
}

func NewPostgresStore(db *sql.DB, name string) Store {
	return &postgresStore{db: db, name: name}
}

func (s *postgresStore) Name() string {
	return s.name
}

func (s *postgresStore) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", collection, err)
	}

	if err := s.ensureTable(ctx, collection); err != nil {
		return "", err
	}

	id := uuid.NewString()
	query := `INSERT INTO ` + pq.QuoteIdentifier(collection) + ` (id, doc) VALUES ($1, $2)`
	if _, err := s.db.ExecContext(ctx, query, id, body); err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return id, nil
}

// ensureTable creates the collection table once per process. Two first
// inserts racing on a fresh database can make IF NOT EXISTS fail with a
// duplicate error; the table exists either way.
func (s *postgresStore) ensureTable(ctx context.Context, collection string) error {
	if _, ok := s.tables.Load(collection); ok {
		return nil
	}

	ddl := `CREATE TABLE IF NOT EXISTS ` + pq.QuoteIdentifier(collection) + ` (
		id UUID PRIMARY KEY,
		doc JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil && !isDuplicateTable(err) {
		return fmt.Errorf("ensure table %s: %w", collection, err)
	}
	s.tables.Store(collection, struct{}{})
	return nil
}

func (s *postgresStore) GetDocuments(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	where, args := postgresWhere(filter)
	query := `SELECT id, doc FROM ` + pq.QuoteIdentifier(collection) + where
	if limit > 0 {
		args = append(args, limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return []Document{}, nil
		}
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var id string
		var body []byte
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		docs = append(docs, NewDocument(id, func(v any) error {
			return json.Unmarshal(body, v)
		}))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}
	return docs, nil
}

func (s *postgresStore) CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error) {
	where, args := postgresWhere(filter)
	query := `SELECT COUNT(*) FROM ` + pq.QuoteIdentifier(collection) + where

	var n int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		if isUndefinedTable(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (s *postgresStore) ListCollectionNames(ctx context.Context, limit int) ([]string, error) {
	query := `SELECT table_name FROM information_schema.columns
		WHERE table_schema = current_schema() AND column_name = 'doc' AND data_type = 'jsonb'
		ORDER BY table_name`
	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list collections: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *postgresStore) Close(context.Context) error {
	return s.db.Close()
}

// postgresWhere renders f as a WHERE clause over the doc column with
// positional arguments starting at $1.
func postgresWhere(f Filter) (string, []any) {
	var conds []string
	var args []any

	for _, c := range f.Equals {
		args = append(args, c.Value)
		conds = append(conds, fmt.Sprintf("doc->>%s = $%d", pq.QuoteLiteral(c.Field), len(args)))
	}
	if f.Match != nil && len(f.Match.Fields) > 0 {
		args = append(args, "%"+escapeLike(f.Match.Term)+"%")
		n := len(args)
		var or []string
		for _, field := range f.Match.Fields {
			or = append(or, fmt.Sprintf(`doc->>%s ILIKE $%d ESCAPE '\'`, pq.QuoteLiteral(field), n))
		}
		conds = append(conds, "("+strings.Join(or, " OR ")+")")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func isUndefinedTable(err error) bool {
	return hasCode(err, pgUndefinedTable)
}

func isDuplicateTable(err error) bool {
	return hasCode(err, pgDuplicateTable) || hasCode(err, pgUniqueViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
