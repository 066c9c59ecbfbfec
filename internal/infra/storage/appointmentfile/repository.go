package appointmentfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
)

// Repository файловое хранилище записей на приём: одна JSON-коллекция,
// полностью перезаписываемая при каждой мутации. Записи никогда не
// удаляются физически - отмена только меняет статус.
//
// Все мутации сериализуются мьютексом. DoSerializable позволяет выполнить
// последовательность "прочитать - проверить - дописать" атомарно, закрывая
// гонку check-then-act при параллельных бронированиях.
type Repository struct {
	path string
	mu   sync.Mutex
}

type lockCtxKey struct{}

// NewRepository создает репозиторий и гарантирует существование файла.
// Отсутствующий файл создается с пустой коллекцией.
func NewRepository(path string) (*Repository, error) {
	r := &Repository{path: path}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", ErrWriteStore, err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := r.write(fileDocument{Appointments: []appointmentRecord{}}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: stat: %v", ErrReadStore, err)
	}

	return r, nil
}

// DoSerializable выполняет fn под мьютексом хранилища. Вызовы методов
// репозитория внутри fn (через переданный контекст) не пытаются взять
// мьютекс повторно - аналогично транзакции в контексте у txmanager.
func (r *Repository) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(context.WithValue(ctx, lockCtxKey{}, true))
}

func (r *Repository) lock(ctx context.Context) func() {
	if held, _ := ctx.Value(lockCtxKey{}).(bool); held {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

// Create атомарно дописывает новую запись в коллекцию.
// Дисциплина write-new-file-then-replace гарантирует, что при падении
// процесса посреди записи прежние данные не теряются.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	unlock := r.lock(ctx)
	defer unlock()

	doc, err := r.read()
	if err != nil {
		return nil, err
	}

	// Те же ограничения уникальности, что и у UNIQUE-индексов в postgres
	for _, rec := range doc.Appointments {
		if rec.BookingID == appointment.BookingID {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBookingID, appointment.BookingID)
		}
		if rec.ConfirmationCode == appointment.ConfirmationCode {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateConfirmationCode, appointment.ConfirmationCode)
		}
	}

	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = time.Now()
	}

	doc.Appointments = append(doc.Appointments, toRecord(appointment))
	if err := r.write(doc); err != nil {
		return nil, err
	}

	return appointment, nil
}

// GetByBookingID возвращает запись по её booking_id
func (r *Repository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Appointment, error) {
	unlock := r.lock(ctx)
	defer unlock()

	doc, err := r.read()
	if err != nil {
		return nil, err
	}

	for _, rec := range doc.Appointments {
		if rec.BookingID == bookingID {
			appointment, err := rec.toDomain()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrReadStore, err)
			}
			return appointment, nil
		}
	}

	return nil, ErrAppointmentNotFound
}

// GetByDate возвращает записи на указанную дату в хронологическом порядке.
// При onlyConfirmed отменённые записи отбрасываются.
func (r *Repository) GetByDate(ctx context.Context, date time.Time, onlyConfirmed bool) ([]*domain.Appointment, error) {
	unlock := r.lock(ctx)
	defer unlock()

	doc, err := r.read()
	if err != nil {
		return nil, err
	}

	dateStr := date.Format(domain.DateFormat)
	appointments := make([]*domain.Appointment, 0)

	for _, rec := range doc.Appointments {
		if rec.Date != dateStr {
			continue
		}
		if onlyConfirmed && rec.Status != string(domain.StatusConfirmed) {
			continue
		}
		appointment, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadStore, err)
		}
		appointments = append(appointments, appointment)
	}

	sortByStartTime(appointments)
	return appointments, nil
}

// Cancel переводит запись в статус cancelled. Повторная отмена уже
// отменённой записи - no-op, завершающийся успехом (идемпотентная отмена).
// Для неизвестного booking_id возвращает ErrAppointmentNotFound.
func (r *Repository) Cancel(ctx context.Context, bookingID string) error {
	unlock := r.lock(ctx)
	defer unlock()

	doc, err := r.read()
	if err != nil {
		return err
	}

	for i := range doc.Appointments {
		if doc.Appointments[i].BookingID != bookingID {
			continue
		}
		if doc.Appointments[i].Status == string(domain.StatusCancelled) {
			return nil
		}
		doc.Appointments[i].Status = string(domain.StatusCancelled)
		return r.write(doc)
	}

	return ErrAppointmentNotFound
}

func (r *Repository) read() (fileDocument, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return fileDocument{}, fmt.Errorf("%w: %v", ErrReadStore, err)
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fileDocument{}, fmt.Errorf("%w: corrupt json: %v", ErrReadStore, err)
	}
	if doc.Appointments == nil {
		doc.Appointments = []appointmentRecord{}
	}
	return doc, nil
}

// write пишет коллекцию во временный файл и атомарно подменяет им основной
func (r *Repository) write(doc fileDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrWriteStore, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".appointments-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp: %v", ErrWriteStore, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: write temp: %v", ErrWriteStore, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: sync temp: %v", ErrWriteStore, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: close temp: %v", ErrWriteStore, err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: rename: %v", ErrWriteStore, err)
	}

	return nil
}

func sortByStartTime(appointments []*domain.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].StartTime.IsBefore(appointments[j].StartTime)
	})
}
