package kafka

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupOutboxRepo(t *testing.T, now time.Time) (*gorm.DB, *outboxRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	assert.NoError(t, db.AutoMigrate(&OutboxEvent{}))

	return db, &outboxRepository{db: db, now: func() time.Time { return now }}
}

func newEvent(id string) OutboxEvent {
	return OutboxEvent{
		ID:            id,
		AggregateType: "seed_run",
		AggregateID:   id,
		EventType:     "payroll.seed_loaded",
		Topic:         "payroll.seed.loaded.v1",
		Payload:       []byte(`{"employees":2}`),
		Status:        OutboxStatusPending,
	}
}

func TestOutboxRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	db, repo := setupOutboxRepo(t, now)

	assert.NoError(t, repo.Create(ctx, newEvent("evt-1")))
	assert.NoError(t, repo.Create(ctx, newEvent("evt-2")))

	pending, err := repo.ListPending(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, pending, 2)

	assert.NoError(t, repo.MarkSent(ctx, "evt-1"))
	var second OutboxEvent
	for _, e := range pending {
		if e.ID == "evt-2" {
			second = e
		}
	}
	assert.NoError(t, repo.MarkFailed(ctx, second, "broker unavailable"))

	var failed OutboxEvent
	assert.NoError(t, db.First(&failed, "id = ?", "evt-2").Error)
	assert.Equal(t, OutboxStatusFailed, failed.Status)
	assert.Equal(t, 1, failed.RetryCount)
	assert.Equal(t, "broker unavailable", *failed.ErrorMessage)
	assert.WithinDuration(t, now.Add(15*time.Second), *failed.NextRetryAt, time.Second)

	// failed event is not due yet, sent event is gone
	pending, err = repo.ListPending(ctx, 10)
	assert.NoError(t, err)
	assert.Empty(t, pending)

	repo.now = func() time.Time { return now.Add(time.Minute) }
	pending, err = repo.ListPending(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, "evt-2", pending[0].ID)
}

func TestOutboxRepository_WithTx(t *testing.T) {
	ctx := context.Background()
	db, repo := setupOutboxRepo(t, time.Now())

	sqlDB, err := db.DB()
	assert.NoError(t, err)

	tx, err := sqlDB.BeginTx(ctx, nil)
	assert.NoError(t, err)
	assert.NoError(t, repo.WithTx(tx).Create(ctx, newEvent("evt-tx")))
	assert.NoError(t, tx.Rollback())

	var count int64
	assert.NoError(t, db.Model(&OutboxEvent{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.NoError(t, ValidateOutboxEvent(newEvent("evt")))

	missingID := newEvent("")
	assert.EqualError(t, ValidateOutboxEvent(missingID), "outbox id is required")

	noPayload := newEvent("evt")
	noPayload.Payload = nil
	assert.EqualError(t, ValidateOutboxEvent(noPayload), "outbox payload is required")

	badStatus := newEvent("evt")
	badStatus.Status = "queued"
	assert.EqualError(t, ValidateOutboxEvent(badStatus), "invalid outbox status: queued")
}

func TestRetryBackoff(t *testing.T) {
	assert.Equal(t, 15*time.Second, retryBackoff(1))
	assert.Equal(t, 150*time.Second, retryBackoff(10))
	assert.Equal(t, 150*time.Second, retryBackoff(42))
}

func TestOutboxRepository_MarkFailed_TruncatesOnRuneBoundary(t *testing.T) {
	ctx := context.Background()
	db, repo := setupOutboxRepo(t, time.Now())
	assert.NoError(t, repo.Create(ctx, newEvent("evt-utf8")))

	// "é" is two bytes, so byte 500 falls in the middle of a rune
	reason := "x" + strings.Repeat("é", maxErrorMessageLen)
	assert.NoError(t, repo.MarkFailed(ctx, newEvent("evt-utf8"), reason))

	var failed OutboxEvent
	assert.NoError(t, db.First(&failed, "id = ?", "evt-utf8").Error)
	assert.True(t, utf8.ValidString(*failed.ErrorMessage))
	assert.Len(t, *failed.ErrorMessage, maxErrorMessageLen-1)
}

func TestTruncateUTF8(t *testing.T) {
	assert.Equal(t, "short", truncateUTF8("short", 10))
	assert.Equal(t, "ab", truncateUTF8("abc", 2))
	assert.Equal(t, "a", truncateUTF8("aé", 2))
	assert.Equal(t, "", truncateUTF8("é", 1))
}
