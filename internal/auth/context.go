package auth

import (
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
)

// Context é a identidade já autenticada de quem faz a requisição.
// Vai explicitamente para cada caso de uso; o valor zero é anônimo.
type Context struct {
	UserID              uint
	Role                string
	ManagedBarbershopID *uint
}

func Anonymous() Context {
	return Context{}
}

func (a Context) Authenticated() bool {
	return a.UserID != 0
}

func (a Context) CanManage() bool {
	return a.Role == models.RoleOwner || a.Role == models.RoleBarber
}

// ManagedBarbershop confere se o ator administra a barbearia pedida.
// requested == 0 significa "a barbearia que eu administro".
func (a Context) ManagedBarbershop(requested uint) (uint, error) {
	if !a.Authenticated() {
		return 0, httperr.ErrBusiness(httperr.CodeNotAuthenticated)
	}
	if !a.CanManage() {
		return 0, httperr.ErrBusiness(httperr.CodeForbidden)
	}
	if a.ManagedBarbershopID == nil || *a.ManagedBarbershopID == 0 {
		return 0, httperr.ErrBusiness(httperr.CodeNoManagedShop)
	}
	if requested != 0 && requested != *a.ManagedBarbershopID {
		return 0, httperr.ErrBusiness(httperr.CodeForbidden)
	}
	return *a.ManagedBarbershopID, nil
}

func FromUser(u *models.User) Context {
	return Context{
		UserID:              u.ID,
		Role:                u.Role,
		ManagedBarbershopID: u.ManagedBarbershopID,
	}
}
