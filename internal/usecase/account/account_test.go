package account

import (
	"context"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/EltonLopezzs/onbarbearia/internal/auth"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/infra/repository"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
	"github.com/EltonLopezzs/onbarbearia/internal/testutil"
)

const secret = "test-secret"

func newRegister(repo *repository.UserGormRepository) *Register {
	uc := NewRegister(repo, auth.NewTokenIssuer(secret), nil)
	uc.cost = bcrypt.MinCost
	return uc
}

func TestRegisterCreatesCustomer(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUserGormRepository(db)

	s, err := newRegister(repo).Execute(context.Background(), RegisterInput{
		Name:     "Ana",
		Email:    "  Ana@Example.COM ",
		Password: "segredo",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.User.Role != models.RoleCustomer || s.User.Email != "ana@example.com" {
		t.Fatalf("unexpected user %+v", s.User)
	}
	if s.User.PasswordHash == "segredo" {
		t.Fatalf("password stored in clear text")
	}

	actor, err := auth.NewTokenIssuer(secret).Parse(s.Token)
	if err != nil {
		t.Fatalf("token should parse: %v", err)
	}
	if actor.UserID != s.User.ID || actor.CanManage() {
		t.Fatalf("unexpected actor %+v", actor)
	}
}

func TestRegisterRejects(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUserGormRepository(db)
	uc := newRegister(repo)

	if _, err := uc.Execute(context.Background(), RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "segredo"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		in   RegisterInput
		code string
	}{
		{"duplicate email", RegisterInput{Name: "Outra", Email: "ANA@example.com", Password: "segredo"}, httperr.CodeEmailTaken},
		{"short password", RegisterInput{Name: "Bia", Email: "bia@example.com", Password: "123"}, httperr.CodeValidation},
		{"blank name", RegisterInput{Name: " ", Email: "bia@example.com", Password: "segredo"}, httperr.CodeValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.in)
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

type fakeDomains map[string]bool

func (f fakeDomains) Valid(_ context.Context, email string) bool {
	return f[email[strings.LastIndex(email, "@")+1:]]
}

func TestRegisterChecksEmailDomain(t *testing.T) {
	db := testutil.NewDB(t)
	uc := newRegister(repository.NewUserGormRepository(db))
	uc.domains = fakeDomains{"example.com": true}

	_, err := uc.Execute(context.Background(), RegisterInput{Name: "Ana", Email: "ana@naoexiste.invalid", Password: "segredo"})
	if !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation_error, got %v", err)
	}

	if _, err := uc.Execute(context.Background(), RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "segredo"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogin(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUserGormRepository(db)

	if _, err := newRegister(repo).Execute(context.Background(), RegisterInput{
		Name: "Ana", Email: "ana@example.com", Password: "segredo",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	uc := NewLogin(repo, auth.NewTokenIssuer(secret))

	s, err := uc.Execute(context.Background(), "ANA@example.com", "segredo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Token == "" {
		t.Fatalf("expected token")
	}

	if _, err := uc.Execute(context.Background(), "ana@example.com", "errada"); !httperr.IsBusiness(err, httperr.CodeInvalidCredentials) {
		t.Fatalf("expected invalid_credentials for wrong password, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), "ninguem@example.com", "segredo"); !httperr.IsBusiness(err, httperr.CodeInvalidCredentials) {
		t.Fatalf("expected invalid_credentials for unknown email, got %v", err)
	}
}
