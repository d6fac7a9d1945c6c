package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/delivery-ops/internal/domain"
)

// EntityIDSequence is created by the migrations in persistence.
const EntityIDSequence = "entity_id_seq"

// PostgresAllocator draws ids from a database sequence.
type PostgresAllocator struct {
	pool *pgxpool.Pool
}

// NewPostgresAllocator instantiates the allocator.
func NewPostgresAllocator(pool *pgxpool.Pool) (*PostgresAllocator, error) {
	if pool == nil {
		return nil, errors.New("postgres pool not configured")
	}
	return &PostgresAllocator{pool: pool}, nil
}

// Next returns nextval of the shared sequence.
func (a *PostgresAllocator) Next(ctx context.Context, _ domain.EntityKind) (int64, error) {
	var id int64
	if err := a.pool.QueryRow(ctx, "SELECT nextval($1::regclass)", EntityIDSequence).Scan(&id); err != nil {
		return 0, fmt.Errorf("nextval %s: %w", EntityIDSequence, err)
	}
	return id, nil
}
