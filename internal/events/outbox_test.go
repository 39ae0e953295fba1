package events

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupOutbox(t *testing.T) *Outbox {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&DocumentEvent{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	return NewOutbox(db, node)
}

func countEvents(t *testing.T, o *Outbox) int64 {
	t.Helper()
	var count int64
	if err := o.db.Model(&DocumentEvent{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return count
}

func TestPublishStoresEvent(t *testing.T) {
	outbox := setupOutbox(t)

	err := outbox.Publish(context.Background(), Event{
		OrgID: 1,
		Type:  EventDocumentRendered,
		Payload: RenderedPayload{
			Kind:           "invoice",
			DocumentNumber: "INV-1",
			Pages:          2,
		}.ToMap(),
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	var row DocumentEvent
	if err := outbox.db.First(&row).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if row.EventType != EventDocumentRendered || row.OrgID != 1 {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.Payload["document_number"] != "INV-1" {
		t.Fatalf("payload: %+v", row.Payload)
	}
}

func TestPublishValidation(t *testing.T) {
	outbox := setupOutbox(t)
	ctx := context.Background()

	if err := outbox.Publish(ctx, Event{Type: "x"}); err == nil {
		t.Fatalf("expected error for missing org id")
	}
	if err := outbox.Publish(ctx, Event{OrgID: 1}); err == nil {
		t.Fatalf("expected error for missing event type")
	}
	if err := outbox.PublishTx(ctx, nil, Event{OrgID: 1, Type: "x"}); err == nil {
		t.Fatalf("expected error for nil transaction")
	}
}

func TestPublishDedupesByKey(t *testing.T) {
	outbox := setupOutbox(t)
	ctx := context.Background()

	event := Event{
		OrgID:     1,
		Type:      EventDocumentRendered,
		Payload:   map[string]any{"kind": "invoice"},
		DedupeKey: "render:INV-1",
	}
	if err := outbox.Publish(ctx, event); err != nil {
		t.Fatalf("first publish: %v", err)
	}
	if err := outbox.Publish(ctx, event); err != nil {
		t.Fatalf("duplicate publish should be a no-op, got %v", err)
	}
	if got := countEvents(t, outbox); got != 1 {
		t.Fatalf("expected one event, got %d", got)
	}
}

func TestPublishWithoutDedupeKeyAppends(t *testing.T) {
	outbox := setupOutbox(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := outbox.Publish(ctx, Event{
			OrgID:   1,
			Type:    EventTemplateUpdated,
			Payload: map[string]any{"n": i},
		}); err != nil {
			t.Fatalf("publish %d: %v", i, err)
		}
	}
	if got := countEvents(t, outbox); got != 3 {
		t.Fatalf("expected three events, got %d", got)
	}
}

func TestPublishTxParticipatesInTransaction(t *testing.T) {
	outbox := setupOutbox(t)
	ctx := context.Background()

	err := outbox.db.Transaction(func(tx *gorm.DB) error {
		if err := outbox.PublishTx(ctx, tx, Event{
			OrgID:   1,
			Type:    EventTemplateCreated,
			Payload: map[string]any{"name": "Standard"},
		}); err != nil {
			return err
		}
		return fmt.Errorf("rollback")
	})
	if err == nil {
		t.Fatalf("expected rollback error")
	}
	if got := countEvents(t, outbox); got != 0 {
		t.Fatalf("rolled-back event persisted: %d", got)
	}
}
