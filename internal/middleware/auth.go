package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/EltonLopezzs/onbarbearia/internal/auth"
	"github.com/EltonLopezzs/onbarbearia/internal/httperr"
)

const ContextActor = "actor"

type TokenParser interface {
	Parse(token string) (auth.Context, error)
}

// AuthMiddleware exige um Bearer válido e guarda o auth.Context na requisição.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Você precisa estar logado.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			c.Abort()
			return
		}

		actor, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Sessão inválida ou expirada.")
			c.Abort()
			return
		}

		c.Set(ContextActor, actor)
		c.Next()
	}
}

// Actor devolve o ator autenticado, ou anônimo fora das rotas protegidas.
func Actor(c *gin.Context) auth.Context {
	if v, ok := c.Get(ContextActor); ok {
		if actor, ok := v.(auth.Context); ok {
			return actor
		}
	}
	return auth.Anonymous()
}

// RequireRole barra quem não tem um dos papéis informados.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := Actor(c)
		if !actor.Authenticated() {
			httperr.FromError(c, httperr.ErrBusiness(httperr.CodeNotAuthenticated))
			c.Abort()
			return
		}

		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}

		httperr.FromError(c, httperr.ErrBusiness(httperr.CodeForbidden))
		c.Abort()
	}
}
