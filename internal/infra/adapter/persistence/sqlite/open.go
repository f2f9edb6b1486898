package sqlite

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryDSN opens a private in-memory database. Each call to Open with it
// gets a fresh database.
const MemoryDSN = ":memory:"

const busyTimeoutMillis = 5000

// Open connects to the SQLite database at dsn and migrates the articles table.
func Open(dsn string, log *slog.Logger) (*gorm.DB, error) {
	if log == nil {
		log = slog.Default()
	}
	if dsn == "" {
		dsn = MemoryDSN
	}

	gormLogger := logger.New(
		slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	if !isMemory(dsn) {
		dir := filepath.Dir(dsn)
		if dir != "." && dir != "/" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite directory %q: %w", dir, err)
			}
		}
	}
	log.Info("opening sqlite database", slog.String("dsn", dsn))

	db, err := gorm.Open(gormsqlite.Open(withLockOptions(dsn)), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite has a single writer. One connection serializes transactions in
	// the pool instead of failing them with "database is locked" on lock
	// upgrade, and every connection to :memory: would be a separate database.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the articles table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&articleModel{}); err != nil {
		return fmt.Errorf("migrate sqlite: %w", err)
	}
	return nil
}

// withLockOptions makes file databases wait for other processes holding the
// lock and take the write lock when a transaction begins.
func withLockOptions(dsn string) string {
	if isMemory(dsn) {
		return dsn
	}
	var opts []string
	if !strings.Contains(dsn, "_busy_timeout") {
		opts = append(opts, "_busy_timeout="+strconv.Itoa(busyTimeoutMillis))
	}
	if !strings.Contains(dsn, "_txlock") {
		opts = append(opts, "_txlock=immediate")
	}
	if len(opts) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(opts, "&")
}

func isMemory(dsn string) bool {
	return dsn == MemoryDSN || strings.Contains(dsn, "mode=memory")
}
