package book_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при пустых или некорректных полях запроса
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInvalidPatientInfo возвращается при некорректных контактных данных пациента.
	// Проверка выполняется до любого обращения к хранилищу.
	ErrInvalidPatientInfo = errors.New("book_appointment: invalid patient info")

	// ErrUnknownCategory возвращается для нераспознанного типа приёма
	ErrUnknownCategory = errors.New("book_appointment: unknown appointment category")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
