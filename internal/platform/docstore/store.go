// Package docstore is a small document-database abstraction: records are
// written into named collections and read back through a store-neutral
// Filter. Identifiers are always surfaced as text.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ridloal/dyfn-shop/internal/platform/config"
	"github.com/ridloal/dyfn-shop/internal/platform/database"
)

var (
	// ErrNotConfigured means no store handle exists for this process.
	ErrNotConfigured  = errors.New("database not configured")
	ErrUnsupportedURL = errors.New("unsupported database url scheme")
)

type Store interface {
	// Name is the database name as the store reports it.
	Name() string
	// CreateDocument inserts record into collection and returns its id.
	CreateDocument(ctx context.Context, collection string, record any) (string, error)
	// GetDocuments returns at most limit matching documents in store order.
	// A zero limit means no limit.
	GetDocuments(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error)
	CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error)
	ListCollectionNames(ctx context.Context, limit int) ([]string, error)
	Close(ctx context.Context) error
}

// Document is a stored record together with its identifier.
type Document struct {
	ID     string
	decode func(v any) error
}

func NewDocument(id string, decode func(v any) error) Document {
	return Document{ID: id, decode: decode}
}

// Decode unmarshals the stored record into v.
func (d Document) Decode(v any) error {
	if d.decode == nil {
		return fmt.Errorf("document %s has no body", d.ID)
	}
	return d.decode(v)
}

// Open connects to the store named by cfg.URL. The scheme selects the
// backend. With an empty URL it returns ErrNotConfigured.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	if cfg.URL == "" {
		return nil, ErrNotConfigured
	}

	scheme, _, _ := strings.Cut(cfg.URL, "://")
	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		db, err := database.ConnectMongo(ctx, cfg.URL, databaseName(cfg))
		if err != nil {
			return nil, err
		}
		return NewMongoStore(db), nil
	case "postgres", "postgresql":
		db, err := database.ConnectPostgres(ctx, cfg.URL)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(db, databaseName(cfg)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedURL, scheme)
	}
}

// databaseName prefers the configured name and falls back to the database
// in the connection URL path.
func databaseName(cfg config.StoreConfig) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}
