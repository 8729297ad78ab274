package postgres

import (
	"context"
	"fmt"
	"time"

	"shareit/domain"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	_ "github.com/lib/pq"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Options struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

func (o Options) DSN() string {
	sslMode := o.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		o.Host, o.Port, o.User, o.Password, o.Database, sslMode,
	)
}

type PgRepository struct {
	db *sqlx.DB
}

func NewPgRepository(opts Options) (*PgRepository, error) {
	db, err := sqlx.Connect("postgres", opts.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(15)
	db.SetMaxIdleConns(8)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return &PgRepository{db: db}, nil
}

// NewPgRepositoryFromDB wraps an open connection pool.
func NewPgRepositoryFromDB(db *sqlx.DB) *PgRepository {
	return &PgRepository{db: db}
}

func (r *PgRepository) Close() error {
	return r.db.Close()
}

func (r *PgRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// GetPoolStats returns current connection pool statistics
func (r *PgRepository) GetPoolStats() map[string]any {
	stats := r.db.Stats()
	return map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}
}

// get runs a squirrel SELECT expected to produce exactly one row.
func (r *PgRepository) get(ctx context.Context, dest any, qb sq.Sqlizer) error {
	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return mapError(sqlx.GetContext(ctx, r.ext(ctx), dest, query, args...))
}

func (r *PgRepository) selectAll(ctx context.Context, dest any, qb sq.Sqlizer) error {
	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return mapError(sqlx.SelectContext(ctx, r.ext(ctx), dest, query, args...))
}

// exec returns domain.ErrNotFound when no row was affected.
func (r *PgRepository) exec(ctx context.Context, qb sq.Sqlizer) error {
	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	res, err := r.ext(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
