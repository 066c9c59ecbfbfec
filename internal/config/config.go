package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/Clinic-SchedulingService/internal/domain"
)

// Поддерживаемые бэкенды хранилища записей
const (
	StorageBackendFile     = "file"
	StorageBackendPostgres = "postgres"
)

// Config конфигурация сервиса, загружается из TOML-файла
type Config struct {
	Server   Server   `toml:"server"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Storage  Storage  `toml:"storage"`
	Database Database `toml:"database"`
	Clinic   Clinic   `toml:"clinic"`
}

// Server настройки HTTP-сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Storage выбор бэкенда хранилища записей
type Storage struct {
	Backend string `toml:"backend"` // "file" | "postgres"
	File    string `toml:"file"`    // путь к JSON-файлу для backend = "file"
}

// Database настройки подключения к postgres (для backend = "postgres")
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к postgres
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Clinic расписание клиники и справочник типов приёмов
type Clinic struct {
	BusinessStart string   `toml:"business_start"` // "09:00"
	BusinessEnd   string   `toml:"business_end"`   // "17:00"
	SlotStride    int      `toml:"slot_stride"`    // минуты
	WorkingDays   []string `toml:"working_days"`   // "Monday" ... "Friday"

	AppointmentTypes []AppointmentType `toml:"appointment_types"`
}

// AppointmentType один тип приёма из конфигурации
type AppointmentType struct {
	Name            string `toml:"name"`
	DurationMinutes int    `toml:"duration_minutes"`
	Description     string `toml:"description"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: Server{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: Logs{
			Level: "info",
		},
		Metrics: Metrics{
			Enabled:     true,
			ServiceName: "clinic-scheduling-service",
			Path:        "/metrics",
		},
		Storage: Storage{
			Backend: StorageBackendFile,
			File:    "data/appointments.json",
		},
		Database: Database{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Clinic: Clinic{
			BusinessStart: domain.DefaultBusinessStart,
			BusinessEnd:   domain.DefaultBusinessEnd,
			SlotStride:    domain.DefaultSlotStride,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}

	switch c.Storage.Backend {
	case StorageBackendFile:
		if c.Storage.File == "" {
			return fmt.Errorf("config: storage.file is required for the file backend")
		}
	case StorageBackendPostgres:
		if c.Database.DBName == "" {
			return fmt.Errorf("config: database.dbname is required for the postgres backend")
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}

	if _, err := c.WorkingDays(); err != nil {
		return err
	}

	return nil
}

// WorkingDays конвертирует имена дней недели из конфигурации в time.Weekday
func (c *Config) WorkingDays() ([]time.Weekday, error) {
	if len(c.Clinic.WorkingDays) == 0 {
		return domain.DefaultWorkingDays, nil
	}

	names := map[string]time.Weekday{
		"Sunday":    time.Sunday,
		"Monday":    time.Monday,
		"Tuesday":   time.Tuesday,
		"Wednesday": time.Wednesday,
		"Thursday":  time.Thursday,
		"Friday":    time.Friday,
		"Saturday":  time.Saturday,
	}

	days := make([]time.Weekday, 0, len(c.Clinic.WorkingDays))
	for _, name := range c.Clinic.WorkingDays {
		day, ok := names[name]
		if !ok {
			return nil, fmt.Errorf("config: unknown working day %q", name)
		}
		days = append(days, day)
	}
	return days, nil
}

// CategoryInfos конвертирует типы приёмов из конфигурации в доменные.
// Пустой список означает канонический справочник по умолчанию.
func (c *Config) CategoryInfos() []domain.CategoryInfo {
	infos := make([]domain.CategoryInfo, 0, len(c.Clinic.AppointmentTypes))
	for _, t := range c.Clinic.AppointmentTypes {
		infos = append(infos, domain.CategoryInfo{
			Category:        domain.Category(t.Name),
			DurationMinutes: t.DurationMinutes,
			Description:     t.Description,
		})
	}
	return infos
}
