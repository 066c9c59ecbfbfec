package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Patient is the contact snapshot stored with every appointment.
type Patient struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,clinic_phone"`
}

// ErrInvalidPatientInfo is returned when patient contact data fails boundary
// validation. Invalid patient data must never reach the store.
var ErrInvalidPatientInfo = errors.New("domain: invalid patient info")

var patientValidator = newPatientValidator()

func newPatientValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Телефон валиден, если после отбрасывания разделителей остаётся
	// не меньше MinPhoneDigits цифр
	_ = v.RegisterValidation("clinic_phone", func(fl validator.FieldLevel) bool {
		return len(PhoneDigits(fl.Field().String())) >= MinPhoneDigits
	})
	return v
}

// PhoneDigits strips everything but digits from a phone number.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate checks the patient contact data against the boundary rules:
// non-empty name, syntactically valid email, phone with at least ten digits.
func (p Patient) Validate() error {
	if err := patientValidator.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s", ErrInvalidPatientInfo, describeFieldError(verrs[0]))
		}
		return fmt.Errorf("%w: %v", ErrInvalidPatientInfo, err)
	}
	return nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "patient name is required"
	case "Email":
		return "patient email is not a valid email address"
	case "Phone":
		return fmt.Sprintf("patient phone must contain at least %d digits", MinPhoneDigits)
	default:
		return fmt.Sprintf("field %s failed rule %s", fe.Field(), fe.Tag())
	}
}
