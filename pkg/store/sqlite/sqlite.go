// Package sqlite provides a SQLite-backed store so graphs survive process
// restarts. Each user's graph is persisted as a JSON snapshot in a single
// row; conversation messages are append-only rows.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/memorymindai/memorymind/pkg/graph"
	"github.com/memorymindai/memorymind/pkg/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS graphs (
	user_id    TEXT PRIMARY KEY,
	graph_json TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS conversations (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id      TEXT NOT NULL REFERENCES graphs(user_id),
	message_json TEXT NOT NULL,
	created_at   INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_conversations_user ON conversations(user_id, id);
`

// Config holds settings for the SQLite store.
type Config struct {
	// Path is the database file path, or ":memory:".
	Path string

	// MaxNodesPerGraph caps memory nodes per user; zero means unbounded.
	MaxNodesPerGraph int
}

// Driver implements store.Store on SQLite via database/sql.
type Driver struct {
	config Config
	db     *sql.DB
	sb     sq.StatementBuilderType
}

// NewDriver opens (or creates) the database and applies the schema.
func NewDriver(config Config) (*Driver, error) {
	db, err := sql.Open("sqlite3", config.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Driver{
		config: config,
		db:     db,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}, nil
}

// Ensure inserts an empty graph row if the user has none.
func (d *Driver) Ensure(ctx context.Context, userID string) (bool, error) {
	data, err := json.Marshal(graph.New(userID))
	if err != nil {
		return false, fmt.Errorf("marshaling empty graph: %w", err)
	}

	query, args, err := d.sb.
		Insert("graphs").
		Columns("user_id", "graph_json", "updated_at").
		Values(userID, string(data), time.Now().UnixNano()).
		Suffix("ON CONFLICT(user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("building insert: %w", err)
	}

	res, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("inserting graph: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}
	return inserted > 0, nil
}

// Get loads and unmarshals the user's graph snapshot.
func (d *Driver) Get(ctx context.Context, userID string) (*graph.UserGraph, error) {
	return d.getGraph(ctx, d.db, userID)
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (d *Driver) getGraph(ctx context.Context, q querier, userID string) (*graph.UserGraph, error) {
	query, args, err := d.sb.
		Select("graph_json").
		From("graphs").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	var data string
	if err := q.QueryRowContext(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound{UserID: userID}
		}
		return nil, fmt.Errorf("loading graph: %w", err)
	}

	var g graph.UserGraph
	if err := json.Unmarshal([]byte(data), &g); err != nil {
		return nil, fmt.Errorf("unmarshaling graph: %w", err)
	}
	return &g, nil
}

// Conversations loads the user's conversation log in insertion order.
func (d *Driver) Conversations(ctx context.Context, userID string) ([]store.ChatMessage, error) {
	if _, err := d.getGraph(ctx, d.db, userID); err != nil {
		return nil, err
	}
	return d.getLog(ctx, d.db, userID)
}

func (d *Driver) getLog(ctx context.Context, q querier, userID string) ([]store.ChatMessage, error) {
	query, args, err := d.sb.
		Select("message_json").
		From("conversations").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("loading conversations: %w", err)
	}
	defer rows.Close()

	var log []store.ChatMessage
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		var msg store.ChatMessage
		if err := json.Unmarshal([]byte(data), &msg); err != nil {
			return nil, fmt.Errorf("unmarshaling message: %w", err)
		}
		log = append(log, msg)
	}
	return log, rows.Err()
}

// Commit loads the record, applies mutate, and writes graph plus any newly
// appended messages inside one transaction.
func (d *Driver) Commit(ctx context.Context, userID string, mutate func(rec *store.Record) error) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	g, err := d.getGraph(ctx, tx, userID)
	if err != nil {
		return err
	}
	log, err := d.getLog(ctx, tx, userID)
	if err != nil {
		return err
	}

	rec := &store.Record{Graph: g, Log: log}
	logged := len(rec.Log)

	if err := mutate(rec); err != nil {
		return err
	}

	rec.Graph.EvictOverCap(d.config.MaxNodesPerGraph)
	rec.Graph.LastUpdated = time.Now()

	data, err := json.Marshal(rec.Graph)
	if err != nil {
		return fmt.Errorf("marshaling graph: %w", err)
	}

	query, args, err := d.sb.
		Update("graphs").
		Set("graph_json", string(data)).
		Set("updated_at", time.Now().UnixNano()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building update: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating graph: %w", err)
	}

	for _, msg := range rec.Log[logged:] {
		msgData, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("marshaling message: %w", err)
		}
		query, args, err := d.sb.
			Insert("conversations").
			Columns("user_id", "message_json", "created_at").
			Values(userID, string(msgData), msg.Timestamp.UnixNano()).
			ToSql()
		if err != nil {
			return fmt.Errorf("building insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting message: %w", err)
		}
	}

	return tx.Commit()
}

// Users lists every user id with a graph row.
func (d *Driver) Users(ctx context.Context) ([]string, error) {
	query, args, err := d.sb.Select("user_id").From("graphs").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("scanning user id: %w", err)
		}
		users = append(users, userID)
	}
	return users, rows.Err()
}

// Close closes the underlying database.
func (d *Driver) Close() error {
	return d.db.Close()
}
