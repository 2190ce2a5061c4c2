package database

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"venuebooking/internal/domain"
)

// Options tunes the connection pool and SQL logging.
type Options struct {
	LogLevel        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func Connect(dsn string, opts Options) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:  logger.Default.LogMode(parseLogLevel(opts.LogLevel)),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}

	var (
		db  *gorm.DB
		err error
	)
	if IsPostgresDSN(dsn) {
		log.Println("Connecting to PostgreSQL...")
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		log.Println("Using SQLite for local development:", dsn)
		db, err = gorm.Open(
			gormsqlite.New(gormsqlite.Config{
				DriverName: "sqlite",
				DSN:        sqliteDSN(dsn),
			}),
			cfg,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// sqlitePragmas turns on foreign keys and makes write transactions wait for
// the database lock instead of failing with SQLITE_BUSY.
const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate"

// sqliteDSN appends sqlitePragmas unless the DSN already carries a query string.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn
	}
	return dsn + "?" + sqlitePragmas
}

func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func IsPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}

// MigrateOptions controls optional storage-level guards.
type MigrateOptions struct {
	// ExclusionConstraint installs a btree_gist exclusion constraint that rejects
	// overlapping active inquiries for the same venue. Postgres only.
	ExclusionConstraint bool
}

const exclusionConstraintName = "booking_inquiries_no_overlap"

var ErrExclusionUnsupported = errors.New("exclusion constraint requires postgres")

func Migrate(db *gorm.DB, opts MigrateOptions) error {
	if err := db.AutoMigrate(&domain.Venue{}, &domain.BookingInquiry{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if !opts.ExclusionConstraint {
		return nil
	}
	if !IsPostgres(db) {
		return ErrExclusionUnsupported
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
			return fmt.Errorf("create btree_gist: %w", err)
		}

		var exists bool
		if err := tx.Raw(
			`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)`,
			exclusionConstraintName,
		).Scan(&exists).Error; err != nil {
			return err
		}
		if exists {
			return nil
		}

		q := fmt.Sprintf(`
ALTER TABLE booking_inquiries
  ADD CONSTRAINT %s
  EXCLUDE USING gist (
    venue_id WITH =,
    tstzrange(start_date, end_date, '[)') WITH &&
  ) WHERE (status IN ('pending', 'confirmed'))`, exclusionConstraintName)
		if err := tx.Exec(q).Error; err != nil {
			return fmt.Errorf("add exclusion constraint: %w", err)
		}
		log.Printf("installed exclusion constraint %s", exclusionConstraintName)
		return nil
	})
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
