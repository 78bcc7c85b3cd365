package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain"
	"github.com/diegoclair/shift-roster/internal/selector"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	TimezoneName string
	Timezone     *time.Location

	AllowEmptyRosters bool
	SeedFile          string
	ExportDBPath      string

	SlackBotToken      string
	SlackSigningSecret string
	DigestChannel      string
	DigestTime         string
	DigestDays         []int

	MQTTBroker      string
	MQTTClientID    string
	MQTTTopicPrefix string
}

// Load reads the configuration from the environment. Values that cannot be
// parsed are reported rather than replaced by defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "3000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		TimezoneName:       getEnv("TIMEZONE", "UTC"),
		SeedFile:           getEnv("SEED_FILE", ""),
		ExportDBPath:       getEnv("EXPORT_DB_PATH", "./timesheet.db"),
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DigestChannel:      getEnv("SLACK_DIGEST_CHANNEL", ""),
		DigestTime:         getEnv("DIGEST_TIME", domain.DefaultDigestTime),
		MQTTBroker:         getEnv("MQTT_BROKER", ""),
		MQTTClientID:       getEnv("MQTT_CLIENT_ID", "shift-roster"),
		MQTTTopicPrefix:    getEnv("MQTT_TOPIC_PREFIX", "roster"),
	}

	var err error
	if cfg.Timezone, err = time.LoadLocation(cfg.TimezoneName); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.TimezoneName, err)
	}

	if cfg.AllowEmptyRosters, err = parseBool(getEnv("ALLOW_EMPTY_ROSTERS", "false")); err != nil {
		return nil, fmt.Errorf("invalid ALLOW_EMPTY_ROSTERS: %w", err)
	}

	if _, err := selector.ParseMinutes(cfg.DigestTime); err != nil {
		return nil, fmt.Errorf("invalid DIGEST_TIME %q: %w", cfg.DigestTime, err)
	}

	if cfg.DigestDays, err = ParseDays(getEnv("DIGEST_DAYS", "")); err != nil {
		return nil, fmt.Errorf("invalid DIGEST_DAYS: %w", err)
	}

	return cfg, nil
}

// DigestEnabled reports whether the daily digest can be posted.
func (c *Config) DigestEnabled() bool {
	return c.SlackBotToken != "" && c.DigestChannel != ""
}

// ParseDays parses a comma separated list of ISO weekday numbers ("1,3,5").
// An empty string means every day. The result is sorted and deduplicated.
func ParseDays(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return slices.Clone(domain.AllDays), nil
	}

	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		day, ok := domain.WeekdayNumbers[part]
		if !ok {
			return nil, fmt.Errorf("%q is not a weekday number (1-7)", part)
		}
		days = append(days, day)
	}

	slices.Sort(days)
	return slices.Compact(days), nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off", "":
		return false, nil
	}
	return strconv.ParseBool(s)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
