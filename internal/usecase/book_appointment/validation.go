package book_appointment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса: все поля обязательны,
// контактные данные пациента проверяются до обращения к хранилищу
func validateRequest(catalog *domain.Catalog, req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.Reason) == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	if _, err := catalog.DurationOf(req.Category); err != nil {
		if errors.Is(err, domain.ErrUnknownCategory) {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, req.Category)
		}
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := req.Patient.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPatientInfo, err)
	}

	return nil
}
