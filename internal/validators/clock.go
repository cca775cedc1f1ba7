package validators

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/EltonLopezzs/onbarbearia/internal/domain/schedule"
)

// Register instala as tags customizadas no validador do gin.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	return v.RegisterValidation("clock", validateClock)
}

// clock: "HH:MM" em 24h. Vazio passa; use required junto quando obrigatório.
func validateClock(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := schedule.ParseClock(s)
	return err == nil
}
