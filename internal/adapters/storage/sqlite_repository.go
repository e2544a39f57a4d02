package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shiftbot/internal/domain"
	"shiftbot/internal/logging"
	"shiftbot/internal/ports"
)

// SQLiteRepository implements ports.ReportRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.ReportRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the shiftbot logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("SHIFTBOT_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&ReportModel{}, &OperationModel{}, &ChangeLogModel{}, &SessionModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Persist implements ports.ReportWriter.Persist
func (r *SQLiteRepository) Persist(ctx context.Context, report domain.Report) (string, error) {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	model := domainToReportModel(report)

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create report: %w", err)
			}
			return nil
		})
	}, 3)
	if err != nil {
		return "", err
	}

	return model.ID, nil
}

// Get implements ports.ReportReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Report, error) {
	var model ReportModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Preload("Operations", func(db *gorm.DB) *gorm.DB {
				return db.Order("seq ASC")
			}).
			Where("id = ?", id).
			First(&model).Error
	}, 3)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}

	result := reportModelToDomain(model)
	return &result, nil
}

// ListByCrew implements ports.ReportReader.ListByCrew
func (r *SQLiteRepository) ListByCrew(ctx context.Context, crew string) ([]domain.Report, error) {
	var models []ReportModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Preload("Operations", func(db *gorm.DB) *gorm.DB {
				return db.Order("seq ASC")
			}).
			Where("crew = ?", crew).
			Order("number ASC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Report, len(models))
	for i, m := range models {
		result[i] = reportModelToDomain(m)
	}
	return result, nil
}

// AppendLog implements ports.ChangeLogger.AppendLog
func (r *SQLiteRepository) AppendLog(ctx context.Context, entry domain.ChangeLogEntry) error {
	model := domainToChangeLogModel(entry)

	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to append change log entry: %w", err)
		}
		return nil
	}, 3)
}

// LoadLog implements ports.ChangeLogger.LoadLog
func (r *SQLiteRepository) LoadLog(ctx context.Context, reportID string) ([]domain.ChangeLogEntry, error) {
	var models []ChangeLogModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("report_id = ?", reportID).
			Order("timestamp ASC, id ASC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ChangeLogEntry, len(models))
	for i, m := range models {
		result[i] = changeLogModelToDomain(m)
	}
	return result, nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
