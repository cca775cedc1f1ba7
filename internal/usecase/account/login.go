package account

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/EltonLopezzs/onbarbearia/internal/domain/user"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
)

type Login struct {
	users  domain.Repository
	tokens TokenGenerator
}

func NewLogin(users domain.Repository, tokens TokenGenerator) *Login {
	return &Login{users: users, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*Session, error) {
	u, err := uc.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	// e-mail desconhecido e senha errada respondem igual
	if u == nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	token, err := uc.tokens.Generate(u)
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Token: token}, nil
}
