package barbershop

import (
	"context"
	"testing"

	"github.com/EltonLopezzs/onbarbearia/internal/auth"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/infra/repository"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
	"github.com/EltonLopezzs/onbarbearia/internal/testutil"
)

func TestGetBarbershopDetail(t *testing.T) {
	db := testutil.NewDB(t)
	shop := testutil.SeedBarbershop(t, db, "Navalha")
	testutil.SeedWeek(t, db, shop.ID, "08:00", "18:00")
	testutil.SeedService(t, db, shop.ID, "Corte", "40.00")

	uc := NewGetBarbershop(repository.NewBarbershopGormRepository(db))

	got, err := uc.Execute(context.Background(), shop.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Services) != 1 || len(got.OperatingHours) != 7 {
		t.Fatalf("expected services and hours preloaded, got %d/%d", len(got.Services), len(got.OperatingHours))
	}

	_, err = uc.Execute(context.Background(), shop.ID+1)
	if !httperr.IsBusiness(err, httperr.CodeBarbershopNotFound) {
		t.Fatalf("expected barbershop_not_found, got %v", err)
	}
}

func TestUpdateBarbershop(t *testing.T) {
	db := testutil.NewDB(t)
	shop := testutil.SeedBarbershop(t, db, "Navalha")
	repo := repository.NewBarbershopGormRepository(db)
	owner := auth.FromUser(testutil.SeedUser(t, db, models.RoleOwner, testutil.UintPtr(shop.ID)))

	uc := NewUpdateBarbershop(repo, nil)

	name := "Navalha de Ouro"
	desc := "Cortes clássicos"
	got, err := uc.Execute(context.Background(), owner, UpdateBarbershopInput{Name: &name, Description: &desc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != name || got.Address != shop.Address {
		t.Fatalf("unexpected shop %+v", got)
	}

	reloaded, _ := repo.Get(context.Background(), shop.ID)
	if reloaded.Name != name || reloaded.Description != desc {
		t.Fatalf("changes not persisted: %+v", reloaded)
	}

	blank := " "
	if _, err := uc.Execute(context.Background(), owner, UpdateBarbershopInput{Name: &blank}); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation_error, got %v", err)
	}

	customer := auth.FromUser(testutil.SeedUser(t, db, models.RoleCustomer, nil))
	if _, err := uc.Execute(context.Background(), customer, UpdateBarbershopInput{Name: &name}); !httperr.IsBusiness(err, httperr.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
