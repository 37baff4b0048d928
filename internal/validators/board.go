package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/notes-board/models"
)

// Field names accepted by [BoardValidator].
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldText     = "text"
	FieldUID      = "uid"
)

// BoardValidator validates credentials and notes.
type BoardValidator struct{}

func NewBoardValidator() Validator {
	return &BoardValidator{}
}

// Validate checks models.Credentials (email, password) and models.Note
// (uid, text). Without fields every field of the value is checked.
func (v *BoardValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		return v.validateNote(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BoardValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if strings.TrimSpace(credentials.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *BoardValidator) validateNote(note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUID, FieldText}
	}

	for _, field := range fields {
		switch field {
		case FieldUID:
			if note.UID == "" {
				return ErrEmptyUID
			}
		case FieldText:
			if strings.TrimSpace(note.Text) == "" {
				return ErrEmptyText
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}
