package account

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/user"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// Session é o resultado de cadastro e login.
type Session struct {
	User  *models.User
	Token string
}

type TokenGenerator interface {
	Generate(u *models.User) (string, error)
}

// DomainChecker confere se o domínio do e-mail existe.
type DomainChecker interface {
	Valid(ctx context.Context, email string) bool
}

type Register struct {
	users   domain.Repository
	tokens  TokenGenerator
	domains DomainChecker
	cost    int
}

// NewRegister aceita domains nil (sem checagem de DNS).
func NewRegister(users domain.Repository, tokens TokenGenerator, domains DomainChecker) *Register {
	return &Register{users: users, tokens: tokens, domains: domains, cost: bcrypt.DefaultCost}
}

// Execute cadastra sempre um CUSTOMER. Donos e barbeiros são provisionados fora da API.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Session, error) {
	email := NormalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if name == "" || email == "" {
		return nil, httperr.ErrValidation("nome e e-mail são obrigatórios")
	}
	if len(in.Password) < 6 {
		return nil, httperr.ErrValidation("a senha deve ter ao menos 6 caracteres")
	}

	if uc.domains != nil && !uc.domains.Valid(ctx, email) {
		return nil, httperr.ErrValidation("o domínio do e-mail informado não parece ser válido")
	}

	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness(httperr.CodeEmailTaken)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        strings.TrimSpace(in.Phone),
		Role:         models.RoleCustomer,
	}
	if err := uc.users.Create(ctx, u); err != nil {
		// cadastro simultâneo com o mesmo e-mail
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness(httperr.CodeEmailTaken)
		}
		return nil, err
	}

	token, err := uc.tokens.Generate(u)
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Token: token}, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
