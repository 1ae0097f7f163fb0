// Package store opens the key/value backend selected by configuration and
// prepares it for use: data directory, schema migrations, object storage
// client.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/schoolplatform/internal/client/migrations"
	"github.com/dmitrijs2005/schoolplatform/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/schoolplatform/internal/common"
	"github.com/dmitrijs2005/schoolplatform/internal/filex"
)

var (
	sqlOpen = sql.Open

	// gooseUpContext is a seam for testing goose.UpContext.
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return goose.UpContext(ctx, db, dir, opts...)
	}

	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) metadata.ObjectAPI {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// Store owns the backend connection and the repository bound to it.
type Store struct {
	driver string
	repo   metadata.Repository
	db     *sql.DB
}

// Open connects to the backend described by opts.
func Open(ctx context.Context, opts Options) (*Store, error) {
	switch strings.ToLower(opts.Driver) {
	case "", DriverSQLite:
		return openSQLite(ctx, opts)
	case DriverPostgres:
		return openPostgres(ctx, opts)
	case DriverS3:
		return openS3(ctx, opts)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedDriver, opts.Driver)
	}
}

// Repository returns the key/value repository of the opened backend.
func (s *Store) Repository() metadata.Repository {
	return s.repo
}

// Driver returns the name of the opened backend.
func (s *Store) Driver() string {
	return s.driver
}

// Close releases the database connection, if any.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func openSQLite(ctx context.Context, opts Options) (*Store, error) {
	dsn := opts.DSN
	if dsn == "" {
		return nil, fmt.Errorf("sqlite: empty dsn")
	}

	if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		if err := filex.EnsureParentDir(dsn); err != nil {
			return nil, fmt.Errorf("sqlite: %w", err)
		}
	}

	db, err := sqlOpen("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// a single connection keeps ":memory:" databases consistent
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db, "sqlite3", migrations.SQLiteDir); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: %w", err)
	}

	return &Store{driver: DriverSQLite, repo: metadata.NewSQLiteRepository(db), db: db}, nil
}

func openPostgres(ctx context.Context, opts Options) (*Store, error) {
	if opts.DSN == "" {
		return nil, fmt.Errorf("postgres: empty dsn")
	}

	db, err := sqlOpen("pgx", opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	if err := runMigrations(ctx, db, "postgres", migrations.PostgresDir); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	return &Store{driver: DriverPostgres, repo: metadata.NewPostgresRepository(db), db: db}, nil
}

func openS3(ctx context.Context, opts Options) (*Store, error) {
	if opts.S3Bucket == "" {
		return nil, fmt.Errorf("s3: empty bucket")
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.S3Region),
	}
	if opts.S3AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.S3AccessKey, opts.S3SecretKey, ""),
		))
	}

	cfg, err := loadDefaultAWSConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &Store{
		driver: DriverS3,
		repo:   metadata.NewS3Repository(client, opts.S3Bucket, opts.S3Prefix),
	}, nil
}

func runMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := gooseUpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
