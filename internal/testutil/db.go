package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/EltonLopezzs/onbarbearia/internal/db"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

// NewDB abre um sqlite em memória isolado por teste, já migrado.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := dbpkg.GormConfig()
	cfg.PrepareStmt = false

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// uma conexão só: o banco em memória vive enquanto ela existir
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func SeedBarbershop(t *testing.T, db *gorm.DB, name string) *models.Barbershop {
	t.Helper()

	shop := &models.Barbershop{Name: name, Address: "Rua A, 100", Phone: "11999999999"}
	if err := db.Create(shop).Error; err != nil {
		t.Fatalf("seed barbershop: %v", err)
	}
	return shop
}

func SeedUser(t *testing.T, db *gorm.DB, role string, managed *uint) *models.User {
	t.Helper()

	u := &models.User{
		Name:                "User " + role,
		Email:               uuid.NewString() + "@example.com",
		PasswordHash:        "x",
		Role:                role,
		ManagedBarbershopID: managed,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedService(t *testing.T, db *gorm.DB, shopID uint, name string, price string) *models.Service {
	t.Helper()

	s := &models.Service{
		BarbershopID: shopID,
		Name:         name,
		Price:        decimal.RequireFromString(price),
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return s
}

// SeedWeek abre de segunda a sexta no intervalo dado; sábado e domingo fechados.
func SeedWeek(t *testing.T, db *gorm.DB, shopID uint, start, end string) {
	t.Helper()

	for d := 0; d < 7; d++ {
		row := models.OperatingHours{BarbershopID: shopID, DayOfWeek: d}
		if d == 0 || d == 6 {
			row.IsClosed = true
		} else {
			row.StartTime = start
			row.EndTime = end
		}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed hours: %v", err)
		}
	}
}

func SeedBooking(t *testing.T, db *gorm.DB, shopID, serviceID, userID uint, at time.Time) *models.Booking {
	t.Helper()

	b := &models.Booking{
		BarbershopID: shopID,
		ServiceID:    serviceID,
		UserID:       userID,
		Date:         at.UTC(),
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return b
}

func UintPtr(v uint) *uint { return &v }
