package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// GormAdapterConfig tunes the GORM→zap bridge.
type GormAdapterConfig struct {
	SlowThreshold             time.Duration
	IgnoreRecordNotFoundError bool
}

// DefaultGormAdapterConfig flags queries above 200ms as slow.
func DefaultGormAdapterConfig() *GormAdapterConfig {
	return &GormAdapterConfig{
		SlowThreshold:             200 * time.Millisecond,
		IgnoreRecordNotFoundError: true,
	}
}

// GormAdapter routes GORM's logger interface onto the global zap
// logger, tagging every line with the request id from the context.
type GormAdapter struct {
	logLevel gormlogger.LogLevel
	config   *GormAdapterConfig
}

// NewGormAdapter creates an adapter with the default config.
func NewGormAdapter(logLevel gormlogger.LogLevel) *GormAdapter {
	return &GormAdapter{logLevel: logLevel, config: DefaultGormAdapterConfig()}
}

// NewGormAdapterWithConfig creates an adapter with a custom config.
func NewGormAdapterWithConfig(logLevel gormlogger.LogLevel, config *GormAdapterConfig) *GormAdapter {
	if config == nil {
		config = DefaultGormAdapterConfig()
	}
	return &GormAdapter{logLevel: logLevel, config: config}
}

func (l *GormAdapter) LogMode(logLevel gormlogger.LogLevel) gormlogger.Interface {
	return &GormAdapter{logLevel: logLevel, config: l.config}
}

func (l *GormAdapter) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.logLevel >= gormlogger.Info {
		FromContext(ctx).Info(fmt.Sprintf(msg, args...))
	}
}

func (l *GormAdapter) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.logLevel >= gormlogger.Warn {
		FromContext(ctx).Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *GormAdapter) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.logLevel >= gormlogger.Error {
		FromContext(ctx).Error(fmt.Sprintf(msg, args...))
	}
}

func (l *GormAdapter) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.logLevel <= gormlogger.Silent {
		return
	}

	sql, rows := fc()
	elapsed := time.Since(begin)
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
	}
	log := FromContext(ctx)

	if err != nil && l.logLevel >= gormlogger.Error {
		if errors.Is(err, gormlogger.ErrRecordNotFound) && l.config.IgnoreRecordNotFoundError {
			return
		}
		log.Error("database operation failed", append(fields, zap.Error(err))...)
		return
	}

	if l.config.SlowThreshold != 0 && elapsed > l.config.SlowThreshold && l.logLevel >= gormlogger.Warn {
		log.Warn("slow sql query", fields...)
		return
	}

	if l.logLevel >= gormlogger.Info {
		log.Info("sql query executed", fields...)
	}
}
