package book_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newBookingID генерирует идентификатор записи: датированный префикс плюс
// случайный суффикс, например "APPT-20251013-3FA85F64"
func newBookingID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("APPT-%s-%s", now.Format("20060102"), suffix)
}

// newConfirmationCode генерирует короткий код подтверждения для пациента,
// отличный от внутреннего идентификатора записи
func newConfirmationCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}
