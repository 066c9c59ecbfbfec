package appointmentfile

import (
	"errors"

	"github.com/m04kA/Clinic-SchedulingService/internal/infra/storage"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись с таким booking_id не найдена
	ErrAppointmentNotFound = storage.ErrAppointmentNotFound

	// ErrDuplicateBookingID возвращается при попытке сохранить запись с существующим booking_id
	ErrDuplicateBookingID = storage.ErrDuplicateBookingID

	// ErrDuplicateConfirmationCode возвращается при попытке сохранить запись с существующим confirmation_code
	ErrDuplicateConfirmationCode = storage.ErrDuplicateConfirmationCode

	// ErrReadStore возвращается при ошибке чтения файла хранилища
	ErrReadStore = errors.New("appointmentfile.repository: failed to read store file")

	// ErrWriteStore возвращается при ошибке записи файла хранилища
	ErrWriteStore = errors.New("appointmentfile.repository: failed to write store file")
)
