package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/xsalon/scheduling-service/internal/domain"
)

// Config is the full service configuration loaded from a TOML file.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Payments   PaymentsConfig   `toml:"payments"`
	Accounts   AccountsConfig   `toml:"accounts"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Sweeper    SweeperConfig    `toml:"sweeper"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the lib/pq connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type PaymentsConfig struct {
	URL           string `toml:"url"`
	SecretKey     string `toml:"secret_key"`
	WebhookSecret string `toml:"webhook_secret"`
	CallbackURL   string `toml:"callback_url"`
	Timeout       int    `toml:"timeout"`
}

type AccountsConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// SchedulingConfig overrides individual scheduling policy values. Zero fields
// keep the domain defaults.
type SchedulingConfig struct {
	SlotGranularityMinutes     int `toml:"slot_granularity_minutes"`
	HourlyCapacity             int `toml:"hourly_capacity"`
	BookingHorizonDays         int `toml:"booking_horizon_days"`
	CancelNoticeHours          int `toml:"cancel_notice_hours"`
	RescheduleNoticeHours      int `toml:"reschedule_notice_hours"`
	CheckInWindowMinutes       int `toml:"check_in_window_minutes"`
	DefaultWaitEstimateMinutes int `toml:"default_wait_estimate_minutes"`
}

// Policy materializes the scheduling policy with defaults filled in.
func (c SchedulingConfig) Policy() domain.SchedulingPolicy {
	policy := domain.DefaultSchedulingPolicy()

	if c.SlotGranularityMinutes > 0 {
		policy.SlotGranularityMinutes = c.SlotGranularityMinutes
	}
	if c.HourlyCapacity > 0 {
		policy.HourlyCapacity = c.HourlyCapacity
	}
	if c.BookingHorizonDays > 0 {
		policy.BookingHorizonDays = c.BookingHorizonDays
	}
	if c.CancelNoticeHours > 0 {
		policy.CancelNoticeHours = c.CancelNoticeHours
	}
	if c.RescheduleNoticeHours > 0 {
		policy.RescheduleNoticeHours = c.RescheduleNoticeHours
	}
	if c.CheckInWindowMinutes > 0 {
		policy.CheckInWindowMinutes = c.CheckInWindowMinutes
	}
	if c.DefaultWaitEstimateMinutes > 0 {
		policy.DefaultWaitEstimateMinutes = c.DefaultWaitEstimateMinutes
	}

	return policy
}

type SweeperConfig struct {
	IntervalHours  int `toml:"interval_hours"`
	ThresholdHours int `toml:"threshold_hours"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Sweeper.IntervalHours == 0 {
		cfg.Sweeper.IntervalHours = 24
	}
	if cfg.Sweeper.ThresholdHours == 0 {
		cfg.Sweeper.ThresholdHours = domain.DefaultStalePaymentThresholdHours
	}

	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("config: database host and dbname are required")
	}

	return &cfg, nil
}
