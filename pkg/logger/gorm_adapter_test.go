package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormAdapterLogMode(t *testing.T) {
	adapter := NewGormAdapter(gormlogger.Info)
	out := adapter.LogMode(gormlogger.Error)

	changed, ok := out.(*GormAdapter)
	require.True(t, ok)
	assert.Equal(t, gormlogger.Error, changed.logLevel)
	assert.Equal(t, gormlogger.Info, adapter.logLevel)
}

func TestGormAdapterNilConfigFallsBack(t *testing.T) {
	adapter := NewGormAdapterWithConfig(gormlogger.Warn, nil)
	require.NotNil(t, adapter.config)
	assert.Equal(t, 200*time.Millisecond, adapter.config.SlowThreshold)
	assert.True(t, adapter.config.IgnoreRecordNotFoundError)
}

func TestGormAdapterTraceSilent(t *testing.T) {
	adapter := NewGormAdapter(gormlogger.Silent)

	called := false
	adapter.Trace(context.Background(), time.Now(), func() (string, int64) {
		called = true
		return "SELECT 1", 1
	}, nil)
	assert.False(t, called)
}

func TestGormAdapterTraceIgnoresRecordNotFound(t *testing.T) {
	require.NoError(t, Init(&Config{Level: "debug", Output: "stdout"}, "test"))
	defer func() { _ = Sync() }()

	adapter := NewGormAdapter(gormlogger.Error)
	adapter.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM users WHERE id = ?", 0
	}, gormlogger.ErrRecordNotFound)

	adapter.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 0
	}, errors.New("broken pipe"))
}
