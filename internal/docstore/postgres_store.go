package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	createTableSQL = `
		CREATE TABLE IF NOT EXISTS documents (
			path TEXT PRIMARY KEY,
			collection TEXT NOT NULL,
			data JSONB NOT NULL DEFAULT '{}'::jsonb,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection);
	`

	getSQL = `SELECT data FROM documents WHERE path = $1`

	getForUpdateSQL = `SELECT data FROM documents WHERE path = $1 FOR UPDATE`

	// claims the row before locking it so concurrent first writers queue
	// on the primary key instead of both seeing no row
	insertPlaceholderSQL = `
		INSERT INTO documents (path, collection, data)
		VALUES ($1, $2, '{}'::jsonb)
		ON CONFLICT (path) DO NOTHING
		RETURNING path`

	upsertSQL = `
		INSERT INTO documents (path, collection, data, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (path) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = NOW()
	`

	deleteSQL = `DELETE FROM documents WHERE path = $1`

	listSQL = `SELECT path, data FROM documents WHERE collection = $1 ORDER BY path`

	// delivered to listeners when the surrounding transaction commits
	notifySQL = `SELECT pg_notify('docstore_changes', $1)`

	listenSQL = `LISTEN docstore_changes`

	// pause before re-establishing a dropped LISTEN connection
	listenRetryDelay = 2 * time.Second
)

// implements Store on PostgreSQL with LISTEN/NOTIFY change propagation
type PostgresStore struct {
	db       *pgxpool.Pool
	watchers *watchers
	cancel   context.CancelFunc
	done     chan struct{}
}

// creates the store and starts the notification listener; call Initialize
// once before first use to create the table
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	ctx, cancel := context.WithCancel(context.Background())

	s := &PostgresStore{
		db:       db,
		watchers: newWatchers(),
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go s.listen(ctx)

	return s
}

// creates the required tables if they don't exist
func (s *PostgresStore) Initialize(ctx context.Context) error {
	_, err := s.db.Exec(ctx, createTableSQL)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, path string) (Document, error) {
	if err := ValidateDocumentPath(path); err != nil {
		return nil, err
	}

	var raw []byte
	err := s.db.QueryRow(ctx, getSQL, path).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return decodeDocument(raw)
}

func (s *PostgresStore) Set(ctx context.Context, path string, data Document) error {
	if err := ValidateDocumentPath(path); err != nil {
		return err
	}

	return s.update(ctx, path, func(doc Document, exists bool) (Document, error) {
		if !exists {
			doc = make(Document)
		}

		mergeInto(doc, data)
		return doc, nil
	})
}

func (s *PostgresStore) DeleteFields(ctx context.Context, path string, fields ...string) error {
	if err := ValidateDocumentPath(path); err != nil {
		return err
	}

	return s.update(ctx, path, func(doc Document, exists bool) (Document, error) {
		if !exists {
			return nil, ErrNotFound
		}

		for _, f := range fields {
			deleteField(doc, f)
		}

		return doc, nil
	})
}

func (s *PostgresStore) Delete(ctx context.Context, path string) error {
	if err := ValidateDocumentPath(path); err != nil {
		return err
	}

	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteSQL, path); err != nil {
			return fmt.Errorf("failed to delete document: %w", err)
		}

		_, err := tx.Exec(ctx, notifySQL, path)
		return err
	})
}

func (s *PostgresStore) List(ctx context.Context, collection string) ([]Snapshot, error) {
	if err := ValidateCollectionPath(collection); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, listSQL, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var path string
		var raw []byte

		if err := rows.Scan(&path, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}

		doc, err := decodeDocument(raw)
		if err != nil {
			return nil, err
		}

		out = append(out, Snapshot{Path: path, Exists: true, Data: doc})
	}

	return out, rows.Err()
}

func (s *PostgresStore) Subscribe(ctx context.Context, path string, fn Listener) (Subscription, error) {
	if err := ValidateDocumentPath(path); err != nil {
		return nil, err
	}

	w, err := s.watchers.add(ctx, path, s.Get, fn)
	if err != nil {
		return nil, err
	}

	return w, nil
}

// stops the listener; the pool is owned by the caller
func (s *PostgresStore) Close() error {
	s.watchers.closeAll()
	s.cancel()
	<-s.done

	return nil
}

func (s *PostgresStore) update(ctx context.Context, path string, mutate func(Document, bool) (Document, error)) error {
	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		var doc Document
		exists := false

		// a returned row means this transaction created it; rollback drops it
		var created string
		err := tx.QueryRow(ctx, insertPlaceholderSQL, path, parentCollection(path)).Scan(&created)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			exists = true
		case err != nil:
			return fmt.Errorf("failed to claim document: %w", err)
		}

		var raw []byte
		if err := tx.QueryRow(ctx, getForUpdateSQL, path).Scan(&raw); err != nil {
			return fmt.Errorf("failed to lock document: %w", err)
		}

		if exists {
			if doc, err = decodeDocument(raw); err != nil {
				return err
			}
		}

		doc, err = mutate(doc, exists)
		if err != nil {
			return err
		}

		encoded, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to encode document: %w", err)
		}

		if _, err := tx.Exec(ctx, upsertSQL, path, parentCollection(path), encoded); err != nil {
			return fmt.Errorf("failed to write document: %w", err)
		}

		_, err = tx.Exec(ctx, notifySQL, path)
		return err
	})
}

// holds one pooled connection in LISTEN mode and fans notifications out
func (s *PostgresStore) listen(ctx context.Context) {
	defer close(s.done)

	for ctx.Err() == nil {
		if err := s.listenOnce(ctx); err != nil && ctx.Err() == nil {
			select {
			case <-ctx.Done():
			case <-time.After(listenRetryDelay):
			}
		}
	}
}

func (s *PostgresStore) listenOnce(ctx context.Context) error {
	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return err
	}

	defer conn.Release()

	if _, err := conn.Exec(ctx, listenSQL); err != nil {
		return err
	}

	// anything written before LISTEN took effect was missed
	s.watchers.notifyAll()

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			// a dropped connection must not return to the pool in LISTEN mode
			conn.Conn().Close(context.Background()) //nolint:errcheck,gosec // best-effort cleanup
			return err
		}

		s.watchers.notify(n.Payload)
	}
}
