package audit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/EltonLopezzs/onbarbearia/internal/models"
	"github.com/EltonLopezzs/onbarbearia/internal/testutil"
)

func TestDispatcherPersistsEvents(t *testing.T) {
	db := testutil.NewDB(t)
	d := NewDispatcher(New(db), zap.NewNop())

	userID := uint(3)
	entityID := uint(9)
	d.Dispatch(Event{
		BarbershopID: 1,
		UserID:       &userID,
		Action:       "booking_created",
		Entity:       "booking",
		EntityID:     &entityID,
		Metadata:     map[string]string{"date": "2025-06-10T13:00:00Z"},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}

	var logs []models.AuditLog
	if err := db.Find(&logs).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 audit log, got %d", len(logs))
	}
	if logs[0].Action != "booking_created" || *logs[0].EntityID != 9 {
		t.Fatalf("unexpected log %+v", logs[0])
	}

	var meta map[string]string
	if err := json.Unmarshal(logs[0].Metadata, &meta); err != nil {
		t.Fatalf("metadata is not json: %v", err)
	}
	if meta["date"] == "" {
		t.Fatalf("expected metadata date, got %v", meta)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	d := NewDispatcher(New(db), zap.NewNop())

	ctx := context.Background()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := d.Close(ctx); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
