package index

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ragforge/docqa"
)

// DBPool is the subset of pgxpool.Pool the index needs. Tests substitute
// a pgxmock pool.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Postgres persists an index in a Postgres table and scores client-side.
// Rows carry the index name, so one table holds many named indexes; a
// build deletes and rewrites the rows for its name.
type Postgres struct {
	pool      DBPool
	tableName string
	name      string

	entries []entry
	dim     int
	metric  Metric
}

// PostgresOptions configures the Postgres connection and table layout.
type PostgresOptions struct {
	ConnString string
	TableName  string // Default "docqa_index"
}

// NewPostgresPool creates a pgx pool from options.
func NewPostgresPool(ctx context.Context, opts PostgresOptions) (DBPool, error) {
	pool, err := pgxpool.New(ctx, opts.ConnString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return pool, nil
}

func postgresTableName(name string) string {
	if name == "" {
		return "docqa_index"
	}
	return name
}

// InitPostgresSchema creates the index table if it doesn't exist.
func InitPostgresSchema(ctx context.Context, pool DBPool, tableName string) error {
	tableName = postgresTableName(tableName)
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			index_name TEXT NOT NULL,
			ord INTEGER NOT NULL,
			document_id TEXT NOT NULL,
			content TEXT NOT NULL,
			start_offset INTEGER NOT NULL,
			chunk_pos INTEGER NOT NULL,
			vector JSONB NOT NULL,
			PRIMARY KEY (index_name, ord)
		);
	`, tableName)

	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// BuildPostgres validates the chunk/vector pairs, replaces the named index
// rows and returns a searchable handle over the freshly written entries.
func BuildPostgres(ctx context.Context, pool DBPool, tableName, name string, chunks []docqa.Chunk, vectors [][]float32, opts ...Option) (*Postgres, error) {
	o := applyOptions(opts)
	tableName = postgresTableName(tableName)

	entries, dim, err := buildEntries(chunks, vectors)
	if err != nil {
		return nil, err
	}

	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE index_name = $1", tableName)
	if _, err := pool.Exec(ctx, deleteQuery, name); err != nil {
		return nil, docqa.WrapExternal("postgres", "clear index", err)
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (index_name, ord, document_id, content, start_offset, chunk_pos, vector)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, tableName)

	for i, e := range entries {
		vectorJSON, err := json.Marshal(e.vector)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal vector: %w", err)
		}
		_, err = pool.Exec(ctx, insertQuery,
			name,
			i,
			e.chunk.DocumentID,
			e.chunk.Content,
			e.chunk.Start,
			e.chunk.Pos,
			vectorJSON,
		)
		if err != nil {
			return nil, docqa.WrapExternal("postgres", "write index entry", err)
		}
	}

	return &Postgres{
		pool:      pool,
		tableName: tableName,
		name:      name,
		entries:   entries,
		dim:       dim,
		metric:    o.metric,
	}, nil
}

// OpenPostgres loads a previously built index from the table. Opening a
// name with no rows yields an empty index; searching it returns
// ErrEmptyIndex.
func OpenPostgres(ctx context.Context, pool DBPool, tableName, name string, opts ...Option) (*Postgres, error) {
	o := applyOptions(opts)
	tableName = postgresTableName(tableName)

	query := fmt.Sprintf(`
		SELECT document_id, content, start_offset, chunk_pos, vector
		FROM %s
		WHERE index_name = $1
		ORDER BY ord ASC
	`, tableName)

	rows, err := pool.Query(ctx, query, name)
	if err != nil {
		return nil, docqa.WrapExternal("postgres", "open index", err)
	}
	defer rows.Close()

	var entries []entry
	dim := 0
	for rows.Next() {
		var (
			docID      string
			content    string
			start      int
			chunkPos   int
			vectorJSON []byte
		)
		if err := rows.Scan(&docID, &content, &start, &chunkPos, &vectorJSON); err != nil {
			return nil, fmt.Errorf("failed to scan index row: %w", err)
		}

		var vector []float32
		if err := json.Unmarshal(vectorJSON, &vector); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vector: %w", err)
		}
		if dim == 0 {
			dim = len(vector)
		}
		if len(vector) != dim {
			return nil, &docqa.DimensionMismatchError{Want: dim, Got: len(vector)}
		}

		entries = append(entries, entry{
			chunk: docqa.Chunk{
				DocumentID: docID,
				Content:    content,
				Start:      start,
				Pos:        chunkPos,
			},
			vector: vector,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, docqa.WrapExternal("postgres", "read index rows", err)
	}

	return &Postgres{
		pool:      pool,
		tableName: tableName,
		name:      name,
		entries:   entries,
		dim:       dim,
		metric:    o.metric,
	}, nil
}

// Len reports the number of indexed chunks.
func (p *Postgres) Len() int { return len(p.entries) }

// Dimension reports the vector dimension, or 0 for an empty index.
func (p *Postgres) Dimension() int { return p.dim }

// Search scores the loaded entries against the query and returns the top
// k, ordered by descending score with ties resolved by chunk position.
func (p *Postgres) Search(ctx context.Context, query []float32, k int) ([]docqa.ScoredChunk, error) {
	return rank(p.entries, p.metric, p.dim, query, k)
}

// Drop removes the stored rows for this index.
func (p *Postgres) Drop(ctx context.Context) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE index_name = $1", p.tableName)
	if _, err := p.pool.Exec(ctx, query, p.name); err != nil {
		return docqa.WrapExternal("postgres", "drop index", err)
	}
	p.entries = nil
	p.dim = 0
	return nil
}
