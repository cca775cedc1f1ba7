package repository

import (
	"context"
	"testing"

	"github.com/EltonLopezzs/onbarbearia/internal/models"
	"github.com/EltonLopezzs/onbarbearia/internal/testutil"
)

func week(shopID uint, start, end string) []models.OperatingHours {
	rows := make([]models.OperatingHours, 7)
	for d := range rows {
		rows[d] = models.OperatingHours{BarbershopID: shopID, DayOfWeek: d, StartTime: start, EndTime: end}
	}
	return rows
}

func TestReplaceWeekUpsertsSevenRows(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOperatingHoursGormRepository(db)
	ctx := context.Background()

	shop := testutil.SeedBarbershop(t, db, "Navalha")
	testutil.SeedWeek(t, db, shop.ID, "08:00", "18:00")

	next := week(shop.ID, "09:00", "17:00")
	next[0] = models.OperatingHours{BarbershopID: shop.ID, DayOfWeek: 0, IsClosed: true}

	if err := repo.ReplaceWeek(ctx, shop.ID, next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := repo.ListOperatingHours(ctx, shop.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}
	if !rows[0].IsClosed || rows[0].StartTime != "" {
		t.Fatalf("expected sunday closed, got %+v", rows[0])
	}
	if rows[6].StartTime != "09:00" || rows[6].IsClosed {
		t.Fatalf("expected saturday reopened at 09:00, got %+v", rows[6])
	}
}

func TestReplaceWeekIsAllOrNothing(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOperatingHoursGormRepository(db)
	ctx := context.Background()

	shop := testutil.SeedBarbershop(t, db, "Navalha")
	other := testutil.SeedBarbershop(t, db, "Outra")
	testutil.SeedWeek(t, db, shop.ID, "08:00", "18:00")

	bad := week(shop.ID, "10:00", "12:00")
	bad[6].BarbershopID = other.ID

	if err := repo.ReplaceWeek(ctx, shop.ID, bad); err == nil {
		t.Fatalf("expected error")
	}

	rows, _ := repo.ListOperatingHours(ctx, shop.ID)
	for _, r := range rows {
		if r.StartTime == "10:00" {
			t.Fatalf("partial write leaked: %+v", r)
		}
	}

	otherRows, _ := repo.ListOperatingHours(ctx, other.ID)
	if len(otherRows) != 0 {
		t.Fatalf("expected no rows for the other shop, got %d", len(otherRows))
	}
}

func TestReplaceWeekLeavesOtherShopsAlone(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOperatingHoursGormRepository(db)
	ctx := context.Background()

	x := testutil.SeedBarbershop(t, db, "X")
	y := testutil.SeedBarbershop(t, db, "Y")
	testutil.SeedWeek(t, db, x.ID, "08:00", "18:00")
	testutil.SeedWeek(t, db, y.ID, "08:00", "18:00")

	if err := repo.ReplaceWeek(ctx, x.ID, week(x.ID, "13:00", "20:00")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h, err := repo.GetOperatingHours(ctx, y.ID, 2)
	if err != nil || h == nil {
		t.Fatalf("expected Y's tuesday, got %v / %v", h, err)
	}
	if h.StartTime != "08:00" {
		t.Fatalf("Y's schedule changed: %+v", h)
	}

	missing, err := repo.GetOperatingHours(ctx, 999, 2)
	if err != nil || missing != nil {
		t.Fatalf("expected nil for unknown shop, got %v / %v", missing, err)
	}
}
