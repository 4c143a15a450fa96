package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sfta-dev/sfta/internal/ir"
	"github.com/sfta-dev/sfta/internal/result"
)

// CachedAnalysis is one stored analysis run.
type CachedAnalysis struct {
	ID         string
	SourceHash string
	Result     *result.Tree
	CreatedAt  time.Time
}

// Put stores tree's result under source's content hash, returning the
// run ID assigned to this entry. If an entry already exists for this
// source hash, Put is a no-op and returns the existing entry's ID —
// the cache is keyed by content, not by call.
func (s *Store) Put(ctx context.Context, source string, tree *result.Tree) (string, error) {
	hash := ir.SourceHash(source)

	if existing, ok, err := s.Get(ctx, source); err != nil {
		return "", err
	} else if ok {
		return existing.ID, nil
	}

	resultJSON, err := encodeTree(tree)
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate run id: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, source_hash, source, result_json, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(source_hash) DO NOTHING
	`,
		id.String(), hash, source, string(resultJSON), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("put analysis: %w", err)
	}

	return id.String(), nil
}

// Get returns the cached analysis for source's content hash, if one
// exists.
func (s *Store) Get(ctx context.Context, source string) (*CachedAnalysis, bool, error) {
	hash := ir.SourceHash(source)

	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_hash, result_json, created_at
		FROM analyses
		WHERE source_hash = ?
	`, hash)

	var id, sourceHash, resultJSON, createdAt string
	switch err := row.Scan(&id, &sourceHash, &resultJSON, &createdAt); err {
	case nil:
	case sql.ErrNoRows:
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("get analysis: %w", err)
	}

	tree, err := decodeTree([]byte(resultJSON))
	if err != nil {
		return nil, false, fmt.Errorf("decode cached result: %w", err)
	}

	createdAtTime, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, false, fmt.Errorf("parse cached timestamp: %w", err)
	}

	return &CachedAnalysis{
		ID:         id,
		SourceHash: sourceHash,
		Result:     tree,
		CreatedAt:  createdAtTime,
	}, true, nil
}
