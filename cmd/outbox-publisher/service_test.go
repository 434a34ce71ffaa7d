package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	gcppubsub "cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/config"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/enums"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/logger"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/outbox"
)

type gormTestDB struct {
	db *gorm.DB
}

func (g *gormTestDB) Ping(context.Context) error {
	return nil
}

func (g *gormTestDB) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.db.WithContext(ctx).Transaction(fn)
}

type fakePubSub struct{}

func (f *fakePubSub) Ping(context.Context) error {
	return nil
}

func (f *fakePubSub) OrdersPublisher() *gcppubsub.Publisher {
	return nil
}

type fakeResult struct {
	err error
}

func (f fakeResult) Get(context.Context) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "msg-1", nil
}

type fakePublisher struct {
	published []*gcppubsub.Message
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, msg *gcppubsub.Message) publishResult {
	f.published = append(f.published, msg)
	return fakeResult{err: f.err}
}

func setupPublisherTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:publisher_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS outbox_events (
  id TEXT PRIMARY KEY,
  event_type TEXT NOT NULL,
  aggregate_type TEXT NOT NULL,
  aggregate_id TEXT NOT NULL,
  payload TEXT NOT NULL,
  attempt_count INTEGER NOT NULL DEFAULT 0,
  last_error TEXT,
  published_at DATETIME,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func insertEvent(t *testing.T, db *gorm.DB) models.OutboxEvent {
	t.Helper()
	event := models.OutboxEvent{
		ID:            uuid.New(),
		EventType:     enums.EventOrderCreated,
		AggregateType: enums.AggregateOrder,
		AggregateID:   uuid.New(),
		Payload:       []byte(`{"version":1,"eventId":"evt-1","data":{}}`),
	}
	require.NoError(t, db.Create(&event).Error)
	return event
}

func newTestService(t *testing.T, db *gorm.DB, pub *fakePublisher) *Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Config:           &config.Config{Outbox: config.OutboxConfig{BatchSize: 10, MaxAttempts: 3}},
		Logger:           logger.New(logger.Options{ServiceName: "outbox-test"}),
		DB:               &gormTestDB{db: db},
		PubSub:           &fakePubSub{},
		Repository:       outbox.NewRepository(db),
		PublisherFactory: func() publisher { return pub },
	})
	require.NoError(t, err)
	return svc
}

func TestProcessBatchPublishesAndMarks(t *testing.T) {
	db := setupPublisherTestDB(t)
	event := insertEvent(t, db)
	pub := &fakePublisher{}
	svc := newTestService(t, db, pub)

	processed, err := svc.processBatch(context.Background())
	require.NoError(t, err)
	assert.True(t, processed)
	require.Len(t, pub.published, 1)
	assert.Equal(t, "order_created", pub.published[0].Attributes["event_type"])
	assert.Equal(t, "evt-1", pub.published[0].Attributes["event_id"])

	var row models.OutboxEvent
	require.NoError(t, db.First(&row, "id = ?", event.ID).Error)
	assert.NotNil(t, row.PublishedAt)
}

func TestProcessBatchRecordsFailure(t *testing.T) {
	db := setupPublisherTestDB(t)
	event := insertEvent(t, db)
	pub := &fakePublisher{err: errors.New("broker unavailable")}
	svc := newTestService(t, db, pub)

	processed, err := svc.processBatch(context.Background())
	require.NoError(t, err)
	assert.True(t, processed)

	var row models.OutboxEvent
	require.NoError(t, db.First(&row, "id = ?", event.ID).Error)
	assert.Nil(t, row.PublishedAt)
	assert.Equal(t, 1, row.AttemptCount)
	require.NotNil(t, row.LastError)
	assert.Contains(t, *row.LastError, "broker unavailable")
}

func TestProcessBatchSkipsExhaustedEvents(t *testing.T) {
	db := setupPublisherTestDB(t)
	event := insertEvent(t, db)
	require.NoError(t, db.Model(&models.OutboxEvent{}).Where("id = ?", event.ID).Update("attempt_count", 3).Error)

	pub := &fakePublisher{}
	svc := newTestService(t, db, pub)

	processed, err := svc.processBatch(context.Background())
	require.NoError(t, err)
	assert.False(t, processed)
	assert.Empty(t, pub.published)
}

func TestProcessBatchEmptyTableIsQuiet(t *testing.T) {
	db := setupPublisherTestDB(t)
	pub := &fakePublisher{}
	svc := newTestService(t, db, pub)

	processed, err := svc.processBatch(context.Background())
	require.NoError(t, err)
	assert.False(t, processed)
}
