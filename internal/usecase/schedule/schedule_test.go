package schedule

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/EltonLopezzs/onbarbearia/internal/auth"
	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/schedule"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/infra/repository"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
	"github.com/EltonLopezzs/onbarbearia/internal/testutil"
)

type fixture struct {
	db    *gorm.DB
	repo  *repository.OperatingHoursGormRepository
	cache *testutil.MemoryCache
	uc    *ReplaceOperatingHours
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	repo := repository.NewOperatingHoursGormRepository(db)
	c := testutil.NewMemoryCache()

	return &fixture{
		db:    db,
		repo:  repo,
		cache: c,
		uc:    NewReplaceOperatingHours(repo, c, nil, zap.NewNop()),
	}
}

func week(start, end string) []domain.Day {
	days := make([]domain.Day, 0, domain.DaysInWeek)
	for d := 0; d < domain.DaysInWeek; d++ {
		if d == 0 {
			days = append(days, domain.Day{DayOfWeek: d, IsClosed: true})
			continue
		}
		days = append(days, domain.Day{DayOfWeek: d, StartTime: start, EndTime: end})
	}
	return days
}

func owner(t *testing.T, db *gorm.DB, shopID uint) auth.Context {
	return auth.FromUser(testutil.SeedUser(t, db, models.RoleOwner, testutil.UintPtr(shopID)))
}

func TestGetOperatingHoursFillsMissingDays(t *testing.T) {
	f := setup(t)
	shop := testutil.SeedBarbershop(t, f.db, "Navalha")

	got, err := NewGetOperatingHours(f.repo).Execute(context.Background(), shop.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 7 {
		t.Fatalf("expected 7 days, got %d", len(got))
	}
	for d, row := range got {
		if row.DayOfWeek != d || !row.IsClosed {
			t.Fatalf("day %d should be a closed placeholder, got %+v", d, row)
		}
	}
}

func TestReplaceOperatingHours(t *testing.T) {
	f := setup(t)
	shop := testutil.SeedBarbershop(t, f.db, "Navalha")
	testutil.SeedWeek(t, f.db, shop.ID, "08:00", "18:00")
	_ = f.cache.Set(context.Background(), shop.ID, "2025-06-10", []string{"08:00"})

	got, err := f.uc.Execute(context.Background(), owner(t, f.db, shop.ID), ReplaceOperatingHoursInput{
		Days: week("09:00", "17:00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 7 || !got[0].IsClosed || got[3].StartTime != "09:00" || got[6].EndTime != "17:00" {
		t.Fatalf("unexpected week %+v", got)
	}
	// sábado estava fechado e passou a abrir
	if got[6].IsClosed {
		t.Fatalf("saturday should be open now")
	}
	if f.cache.Has(shop.ID, "2025-06-10") {
		t.Fatalf("cache of the barbershop should be invalidated")
	}

	var count int64
	f.db.Model(&models.OperatingHours{}).Where("barbershop_id = ?", shop.ID).Count(&count)
	if count != 7 {
		t.Fatalf("expected 7 rows, got %d", count)
	}
}

func TestReplaceOperatingHoursInvalidDayRejectsAll(t *testing.T) {
	f := setup(t)
	shop := testutil.SeedBarbershop(t, f.db, "Navalha")
	testutil.SeedWeek(t, f.db, shop.ID, "08:00", "18:00")

	days := week("09:00", "17:00")
	days[4].EndTime = "08:00"

	_, err := f.uc.Execute(context.Background(), owner(t, f.db, shop.ID), ReplaceOperatingHoursInput{Days: days})
	if !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation_error, got %v", err)
	}

	rows, _ := f.repo.ListOperatingHours(context.Background(), shop.ID)
	for _, r := range rows {
		if !r.IsClosed && r.StartTime != "08:00" {
			t.Fatalf("no day should have changed, got %+v", r)
		}
	}
}

func TestReplaceOperatingHoursIsolatedPerShop(t *testing.T) {
	f := setup(t)
	x := testutil.SeedBarbershop(t, f.db, "X")
	y := testutil.SeedBarbershop(t, f.db, "Y")
	testutil.SeedWeek(t, f.db, y.ID, "08:00", "18:00")
	_ = f.cache.Set(context.Background(), y.ID, "2025-06-10", []string{"08:00"})

	if _, err := f.uc.Execute(context.Background(), owner(t, f.db, x.ID), ReplaceOperatingHoursInput{
		Days: week("10:00", "12:00"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !f.cache.Has(y.ID, "2025-06-10") {
		t.Fatalf("cache of another barbershop must survive")
	}
	rows, _ := f.repo.ListOperatingHours(context.Background(), y.ID)
	for _, r := range rows {
		if !r.IsClosed && (r.StartTime != "08:00" || r.EndTime != "18:00") {
			t.Fatalf("barbershop Y changed: %+v", r)
		}
	}
}

func TestReplaceOperatingHoursAuthorization(t *testing.T) {
	f := setup(t)
	x := testutil.SeedBarbershop(t, f.db, "X")
	y := testutil.SeedBarbershop(t, f.db, "Y")
	customer := auth.FromUser(testutil.SeedUser(t, f.db, models.RoleCustomer, nil))
	barberNoShop := auth.FromUser(testutil.SeedUser(t, f.db, models.RoleBarber, nil))

	cases := []struct {
		name  string
		actor auth.Context
		shop  uint
		code  string
	}{
		{"anonymous", auth.Anonymous(), 0, httperr.CodeNotAuthenticated},
		{"customer", customer, 0, httperr.CodeForbidden},
		{"barber without shop", barberNoShop, 0, httperr.CodeNoManagedShop},
		{"owner of other shop", owner(t, f.db, x.ID), y.ID, httperr.CodeForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), tc.actor, ReplaceOperatingHoursInput{
				BarbershopID: tc.shop,
				Days:         week("09:00", "17:00"),
			})
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}
