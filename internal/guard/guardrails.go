package guard

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// ChatRequest is the body accepted by POST /chat.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	UserID  string `json:"user_id,omitempty" validate:"omitempty,identity"`
}

var idRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("identity", func(fl validator.FieldLevel) bool {
		return ValidIdentity(fl.Field().String())
	})
	return v
}

// ValidIdentity reports whether id can be used as a session key.
func ValidIdentity(id string) bool {
	return idRe.MatchString(id)
}

// ---- API pública: un solo punto de entrada ----

// ValidateChatRequest checks shape and size of a chat request. maxLen counts
// runes; 0 disables the limit.
func ValidateChatRequest(req ChatRequest, maxLen int) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "Message":
				return fmt.Errorf("falta parámetro requerido: message")
			case "UserID":
				return fmt.Errorf("user_id no válido: %s", req.UserID)
			}
		}
		return err
	}
	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("message vacío")
	}
	if !utf8.ValidString(req.Message) {
		return fmt.Errorf("message no es UTF-8 válido")
	}
	if n := utf8.RuneCountInString(req.Message); maxLen > 0 && n > maxLen {
		return fmt.Errorf("message excede límite permitido: %d > %d", n, maxLen)
	}
	return nil
}
