package check_availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(catalog *domain.Catalog, req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := catalog.DurationOf(req.Category); err != nil {
		if errors.Is(err, domain.ErrUnknownCategory) {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, req.Category)
		}
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return nil
}
