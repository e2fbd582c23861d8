// Package config loads the service configuration from config.yml via viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"controlling_heating/internal/logger"

	"github.com/spf13/viper"
)

const envPrefix = "HEATING"

// Config is the explicit configuration passed to constructors.
type Config struct {
	Port    string        `mapstructure:"port"`
	DB      DBConfig      `mapstructure:"db"`
	Log     LogConfig     `mapstructure:"log"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Heating HeatingConfig `mapstructure:"heating"`
	Alerts  AlertsConfig  `mapstructure:"alerts"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

// HeatingConfig holds the control-loop tuning knobs.
type HeatingConfig struct {
	Threshold             float64       `mapstructure:"threshold"`
	MinimumTemp           float64       `mapstructure:"minimum_temp"`
	AdvanceTarget         float64       `mapstructure:"advance_target"`
	DefaultAdvanceMinutes int           `mapstructure:"default_advance_minutes"`
	LoopInterval          time.Duration `mapstructure:"loop_interval"`
	AdvanceInterval       time.Duration `mapstructure:"advance_interval"`
	PinOnState            int           `mapstructure:"pin_on_state"`
	GPIOChip              string        `mapstructure:"gpio_chip"`
	FakeRelay             bool          `mapstructure:"fake_relay"`
	SensorTimeout         time.Duration `mapstructure:"sensor_timeout"`
	Timezone              string        `mapstructure:"timezone"`
	TargetMin             float64       `mapstructure:"target_min"`
	TargetMax             float64       `mapstructure:"target_max"`
}

type AlertsConfig struct {
	Slack SlackConfig `mapstructure:"slack"`
	MQTT  MQTTConfig  `mapstructure:"mqtt"`
}

type SlackConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
}

type MQTTConfig struct {
	Broker   string `mapstructure:"broker"`
	Topic    string `mapstructure:"topic"`
	ClientID string `mapstructure:"client_id"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("heating.threshold", 0.2)
	v.SetDefault("heating.minimum_temp", 5.0)
	v.SetDefault("heating.advance_target", 20.0)
	v.SetDefault("heating.default_advance_minutes", 30)
	v.SetDefault("heating.loop_interval", 60*time.Second)
	v.SetDefault("heating.advance_interval", 60*time.Second)
	v.SetDefault("heating.pin_on_state", 0)
	v.SetDefault("heating.gpio_chip", "gpiochip0")
	v.SetDefault("heating.fake_relay", false)
	v.SetDefault("heating.sensor_timeout", 5*time.Second)
	v.SetDefault("heating.timezone", "Europe/London")
	v.SetDefault("heating.target_min", 5.0)
	v.SetDefault("heating.target_max", 30.0)
	v.SetDefault("alerts.mqtt.topic", "heating/alerts")
	v.SetDefault("alerts.mqtt.client_id", "controlling-heating")
}

// Default returns the configuration used when no file is present.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}

// Location resolves the household timezone.
func (h HeatingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(h.Timezone)
}

// Validate rejects settings the control loop cannot run with.
func (c Config) Validate() error {
	var errs []error
	h := c.Heating
	if h.Threshold <= 0 {
		errs = append(errs, fmt.Errorf("heating.threshold must be > 0 (got %g)", h.Threshold))
	}
	if h.TargetMin >= h.TargetMax {
		errs = append(errs, fmt.Errorf("heating.target_min must be < target_max (%g >= %g)", h.TargetMin, h.TargetMax))
	}
	if h.LoopInterval <= 0 || h.AdvanceInterval <= 0 {
		errs = append(errs, errors.New("heating.loop_interval and heating.advance_interval must be positive"))
	}
	if h.PinOnState != 0 && h.PinOnState != 1 {
		errs = append(errs, fmt.Errorf("heating.pin_on_state must be 0 or 1 (got %d)", h.PinOnState))
	}
	if h.DefaultAdvanceMinutes <= 0 {
		errs = append(errs, fmt.Errorf("heating.default_advance_minutes must be positive (got %d)", h.DefaultAdvanceMinutes))
	}
	if _, err := h.Location(); err != nil {
		errs = append(errs, fmt.Errorf("heating.timezone: %w", err))
	}
	if !logger.Valid(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be debug, info, warn or error (got %q)", c.Log.Level))
	}
	if c.Auth.SigningKey == "" {
		errs = append(errs, errors.New("auth.signing_key is required"))
	}
	return errors.Join(errs...)
}

// Watcher owns the viper instance so the file can be re-read on demand.
type Watcher struct {
	mu  sync.Mutex
	v   *viper.Viper
	cfg Config
}

// Load reads the config file at path (configs/config.yml when empty).
// Environment variables prefixed with HEATING_ override file values.
func Load(path string) (*Watcher, error) {
	v := viper.New()
	setDefaults(v)
	if path == "" {
		v.AddConfigPath("configs") // configs/config.yml
		v.SetConfigName("config")
	} else {
		v.SetConfigFile(path)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	w := &Watcher{v: v}
	if err := w.read(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Watcher) read() error {
	if err := w.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := w.v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	w.cfg = cfg
	return nil
}

// Config returns the last successfully loaded configuration.
func (w *Watcher) Config() Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cfg
}

// Reload re-reads the file. On failure the previous configuration is kept.
func (w *Watcher) Reload() (Config, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	prev := w.cfg
	if err := w.read(); err != nil {
		w.cfg = prev
		return prev, err
	}
	return w.cfg, nil
}
