package booking

import (
	"context"
	"testing"
	"time"

	"github.com/EltonLopezzs/onbarbearia/internal/auth"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/infra/repository"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
	"github.com/EltonLopezzs/onbarbearia/internal/testutil"
)

func TestListCustomerBookingsSplitsByNow(t *testing.T) {
	db := testutil.NewDB(t)
	shop := testutil.SeedBarbershop(t, db, "Navalha")
	svc := testutil.SeedService(t, db, shop.ID, "Corte", "45")
	u := testutil.SeedUser(t, db, models.RoleCustomer, nil)
	other := testutil.SeedUser(t, db, models.RoleCustomer, nil)

	testutil.SeedBooking(t, db, shop.ID, svc.ID, u.ID, now.Add(-48*time.Hour))
	testutil.SeedBooking(t, db, shop.ID, svc.ID, u.ID, now.Add(-24*time.Hour))
	testutil.SeedBooking(t, db, shop.ID, svc.ID, u.ID, now.Add(24*time.Hour))
	testutil.SeedBooking(t, db, shop.ID, svc.ID, other.ID, now.Add(48*time.Hour))

	uc := NewListCustomerBookings(repository.NewBookingGormRepository(db))

	out, err := uc.Execute(context.Background(), auth.FromUser(u), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Upcoming) != 1 || len(out.Past) != 2 {
		t.Fatalf("expected 1 upcoming and 2 past, got %d/%d", len(out.Upcoming), len(out.Past))
	}
	if !out.Past[0].Date.After(out.Past[1].Date) {
		t.Fatalf("expected most recent past booking first")
	}
	if out.Upcoming[0].Service.Name != "Corte" || out.Upcoming[0].Barbershop.Name != "Navalha" {
		t.Fatalf("expected service and barbershop preloaded, got %+v", out.Upcoming[0])
	}

	if _, err := uc.Execute(context.Background(), auth.Anonymous(), now); !httperr.IsBusiness(err, httperr.CodeNotAuthenticated) {
		t.Fatalf("expected not_authenticated, got %v", err)
	}
}
