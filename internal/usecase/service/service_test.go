package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/EltonLopezzs/onbarbearia/internal/auth"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/infra/repository"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
	"github.com/EltonLopezzs/onbarbearia/internal/testutil"
)

var now = time.Date(2025, 6, 9, 15, 0, 0, 0, time.UTC)

type fixture struct {
	db    *gorm.DB
	repo  *repository.ServiceGormRepository
	shop  *models.Barbershop
	owner auth.Context
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	shop := testutil.SeedBarbershop(t, db, "Navalha")
	owner := auth.FromUser(testutil.SeedUser(t, db, models.RoleOwner, testutil.UintPtr(shop.ID)))

	return &fixture{
		db:    db,
		repo:  repository.NewServiceGormRepository(db),
		shop:  shop,
		owner: owner,
	}
}

func TestListServicesUnknownShop(t *testing.T) {
	f := setup(t)
	uc := NewListServices(f.repo, repository.NewBarbershopGormRepository(f.db))

	_, err := uc.Execute(context.Background(), f.shop.ID+100)
	if !httperr.IsBusiness(err, httperr.CodeBarbershopNotFound) {
		t.Fatalf("expected barbershop_not_found, got %v", err)
	}

	testutil.SeedService(t, f.db, f.shop.ID, "Corte", "40.00")
	list, err := uc.Execute(context.Background(), f.shop.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 service, got %d", len(list))
	}
}

func TestCreateService(t *testing.T) {
	f := setup(t)
	uc := NewCreateService(f.repo, nil)

	svc, err := uc.Execute(context.Background(), f.owner, CreateServiceInput{
		Name:  "  Barba  ",
		Price: decimal.RequireFromString("30.456"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.BarbershopID != f.shop.ID {
		t.Fatalf("expected managed shop %d, got %d", f.shop.ID, svc.BarbershopID)
	}
	if svc.Name != "Barba" || svc.Price.StringFixed(2) != "30.46" {
		t.Fatalf("unexpected service %+v", svc)
	}
}

func TestCreateServiceRejects(t *testing.T) {
	f := setup(t)
	uc := NewCreateService(f.repo, nil)
	customer := auth.FromUser(testutil.SeedUser(t, f.db, models.RoleCustomer, nil))
	other := testutil.SeedBarbershop(t, f.db, "Outra")

	cases := []struct {
		name  string
		actor auth.Context
		in    CreateServiceInput
		code  string
	}{
		{"anonymous", auth.Anonymous(), CreateServiceInput{Name: "x"}, httperr.CodeNotAuthenticated},
		{"customer", customer, CreateServiceInput{Name: "x"}, httperr.CodeForbidden},
		{"other shop", f.owner, CreateServiceInput{BarbershopID: other.ID, Name: "x"}, httperr.CodeForbidden},
		{"empty name", f.owner, CreateServiceInput{Name: "   "}, httperr.CodeValidation},
		{"negative price", f.owner, CreateServiceInput{Name: "x", Price: decimal.NewFromInt(-1)}, httperr.CodeValidation},
		{"huge price", f.owner, CreateServiceInput{Name: "x", Price: decimal.NewFromInt(100000000)}, httperr.CodeValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.actor, tc.in)
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestUpdateServicePartial(t *testing.T) {
	f := setup(t)
	svc := testutil.SeedService(t, f.db, f.shop.ID, "Corte", "40.00")
	uc := NewUpdateService(f.repo, nil)

	price := decimal.RequireFromString("55")
	got, err := uc.Execute(context.Background(), f.owner, UpdateServiceInput{
		ServiceID: svc.ID,
		Price:     &price,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Corte" || got.Price.StringFixed(2) != "55.00" {
		t.Fatalf("unexpected service %+v", got)
	}

	_, err = uc.Execute(context.Background(), f.owner, UpdateServiceInput{ServiceID: svc.ID + 50})
	if !httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}

func TestUpdateServiceOfOtherShopIsNotFound(t *testing.T) {
	f := setup(t)
	other := testutil.SeedBarbershop(t, f.db, "Outra")
	foreign := testutil.SeedService(t, f.db, other.ID, "Corte", "40.00")

	name := "Sequestrado"
	_, err := NewUpdateService(f.repo, nil).Execute(context.Background(), f.owner, UpdateServiceInput{
		ServiceID: foreign.ID,
		Name:      &name,
	})
	if !httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}

func TestDeleteServiceGuard(t *testing.T) {
	f := setup(t)
	svc := testutil.SeedService(t, f.db, f.shop.ID, "Corte", "40.00")
	client := testutil.SeedUser(t, f.db, models.RoleCustomer, nil)
	uc := NewDeleteService(f.repo, nil)

	testutil.SeedBooking(t, f.db, f.shop.ID, svc.ID, client.ID, now.Add(24*time.Hour))

	err := uc.Execute(context.Background(), f.owner, DeleteServiceInput{ServiceID: svc.ID, Now: now})
	if !httperr.IsBusiness(err, httperr.CodeHasFutureBookings) {
		t.Fatalf("expected has_future_bookings, got %v", err)
	}

	// a mesma reserva já é passado dois dias depois
	err = uc.Execute(context.Background(), f.owner, DeleteServiceInput{ServiceID: svc.ID, Now: now.Add(48 * time.Hour)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = uc.Execute(context.Background(), f.owner, DeleteServiceInput{ServiceID: svc.ID, Now: now})
	if !httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
		t.Fatalf("expected service_not_found after delete, got %v", err)
	}
}

func TestDeleteServiceBookingAtNowBlocks(t *testing.T) {
	f := setup(t)
	svc := testutil.SeedService(t, f.db, f.shop.ID, "Corte", "40.00")
	client := testutil.SeedUser(t, f.db, models.RoleCustomer, nil)
	testutil.SeedBooking(t, f.db, f.shop.ID, svc.ID, client.ID, now)

	err := NewDeleteService(f.repo, nil).Execute(context.Background(), f.owner, DeleteServiceInput{ServiceID: svc.ID, Now: now})
	if !httperr.IsBusiness(err, httperr.CodeHasFutureBookings) {
		t.Fatalf("expected has_future_bookings, got %v", err)
	}
}

func TestUploadServiceImage(t *testing.T) {
	f := setup(t)
	svc := testutil.SeedService(t, f.db, f.shop.ID, "Corte", "40.00")
	store := testutil.NewMemoryImageStore()
	uc := NewUploadServiceImage(f.repo, store, nil, zap.NewNop(), 256)

	got, err := uc.Execute(context.Background(), f.owner, UploadServiceImageInput{
		ServiceID: svc.ID,
		File:      bytes.NewReader(testutil.PNG(t, 64, 32)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(got.ImageURL, ".webp") {
		t.Fatalf("expected webp url, got %q", got.ImageURL)
	}
	if len(store.Objects) != 1 {
		t.Fatalf("expected one stored object, got %d", len(store.Objects))
	}

	var saved models.Service
	if err := f.db.First(&saved, svc.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if saved.ImageURL != got.ImageURL {
		t.Fatalf("url not persisted: %q", saved.ImageURL)
	}
}

func TestUploadServiceImageReplacesPreviousObject(t *testing.T) {
	f := setup(t)
	svc := testutil.SeedService(t, f.db, f.shop.ID, "Corte", "40.00")
	store := testutil.NewMemoryImageStore()
	uc := NewUploadServiceImage(f.repo, store, nil, zap.NewNop(), 256)
	ctx := context.Background()

	first, err := uc.Execute(ctx, f.owner, UploadServiceImageInput{
		ServiceID: svc.ID,
		File:      bytes.NewReader(testutil.PNG(t, 16, 16)),
	})
	if err != nil {
		t.Fatalf("first upload: %v", err)
	}
	firstKey := first.ImageKey

	second, err := uc.Execute(ctx, f.owner, UploadServiceImageInput{
		ServiceID: svc.ID,
		File:      bytes.NewReader(testutil.PNG(t, 32, 32)),
	})
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}

	if len(store.Objects) != 1 {
		t.Fatalf("expected only the new object, got %d", len(store.Objects))
	}
	if _, ok := store.Objects[firstKey]; ok {
		t.Fatalf("previous object %q was not deleted", firstKey)
	}
	if _, ok := store.Objects[second.ImageKey]; !ok {
		t.Fatalf("new object %q missing", second.ImageKey)
	}

	// falha ao apagar a anterior não desfaz a troca
	store.FailDelete = true
	third, err := uc.Execute(ctx, f.owner, UploadServiceImageInput{
		ServiceID: svc.ID,
		File:      bytes.NewReader(testutil.PNG(t, 8, 8)),
	})
	if err != nil {
		t.Fatalf("third upload: %v", err)
	}

	var saved models.Service
	if err := f.db.First(&saved, svc.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if saved.ImageKey != third.ImageKey || saved.ImageURL != third.ImageURL {
		t.Fatalf("expected third image persisted, got %q", saved.ImageKey)
	}
}

func TestUploadServiceImageInvalid(t *testing.T) {
	f := setup(t)
	svc := testutil.SeedService(t, f.db, f.shop.ID, "Corte", "40.00")
	store := testutil.NewMemoryImageStore()
	uc := NewUploadServiceImage(f.repo, store, nil, zap.NewNop(), 256)

	_, err := uc.Execute(context.Background(), f.owner, UploadServiceImageInput{
		ServiceID: svc.ID,
		File:      strings.NewReader("definitely not an image"),
	})
	if !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation_error, got %v", err)
	}
	if len(store.Objects) != 0 {
		t.Fatalf("nothing should be stored")
	}

	store.FailPut = true
	_, err = uc.Execute(context.Background(), f.owner, UploadServiceImageInput{
		ServiceID: svc.ID,
		File:      bytes.NewReader(testutil.PNG(t, 8, 8)),
	})
	if err == nil || httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
