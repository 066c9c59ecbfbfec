// Package storage содержит общие для всех бэкендов хранилища ошибки.
// Сервисный слой сопоставляет их через errors.Is, не зная конкретный бэкенд.
package storage

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись с таким booking_id не найдена
	ErrAppointmentNotFound = errors.New("storage: appointment not found")

	// ErrDuplicateBookingID возвращается при попытке сохранить запись с существующим booking_id
	ErrDuplicateBookingID = errors.New("storage: duplicate booking id")

	// ErrDuplicateConfirmationCode возвращается при попытке сохранить запись с существующим confirmation_code
	ErrDuplicateConfirmationCode = errors.New("storage: duplicate confirmation code")
)
