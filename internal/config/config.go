package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	apiKeyEnv     = "YT_API_KEY"
	webhookEnv    = "SLACK_WEBHOOK_URL"
	channelsEnv   = "CHANNEL_IDS"
	hoursEnv      = "HOURS_WINDOW"
	perChannelEnv = "MAX_PER_CHANNEL"
	styleEnv      = "DIGEST_STYLE"
	logLevelEnv   = "LOG_LEVEL"
	apiBaseEnv    = "YT_API_BASE"

	defaultHours      = 24
	defaultPerChannel = 10
	defaultStyle      = "minutes"

	// Page-size ceiling of the upstream API; larger caps are clamped.
	maxPerChannelCeiling = 50
)

// Config holds all settings consumed across the application. It is
// built once at startup and passed into components; nothing reads the
// environment after Load returns.
type Config struct {
	APIKey        string
	WebhookURL    string
	ChannelIDs    []string
	WindowHours   int
	MaxPerChannel int
	DigestStyle   string
	APIBase       string
	Logging       LoggingConfig
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string
}

// Load reads configuration from the environment and validates it.
// Missing required keys fail the process before any network activity.
func Load() (Config, error) {
	cfg := Config{
		APIKey:        os.Getenv(apiKeyEnv),
		WebhookURL:    os.Getenv(webhookEnv),
		ChannelIDs:    splitChannels(os.Getenv(channelsEnv)),
		WindowHours:   defaultHours,
		MaxPerChannel: defaultPerChannel,
		DigestStyle:   defaultStyle,
		APIBase:       os.Getenv(apiBaseEnv),
		Logging:       LoggingConfig{Level: os.Getenv(logLevelEnv)},
	}

	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("%s is required", apiKeyEnv)
	}
	if cfg.WebhookURL == "" {
		return Config{}, fmt.Errorf("%s is required", webhookEnv)
	}
	if len(cfg.ChannelIDs) == 0 {
		return Config{}, fmt.Errorf("%s must list at least one channel", channelsEnv)
	}

	hours, err := intFromEnv(hoursEnv, defaultHours)
	if err != nil {
		return Config{}, err
	}
	if hours <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %d", hoursEnv, hours)
	}
	cfg.WindowHours = hours

	perChannel, err := intFromEnv(perChannelEnv, defaultPerChannel)
	if err != nil {
		return Config{}, err
	}
	if perChannel <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %d", perChannelEnv, perChannel)
	}
	if perChannel > maxPerChannelCeiling {
		perChannel = maxPerChannelCeiling
	}
	cfg.MaxPerChannel = perChannel

	if v := os.Getenv(styleEnv); v != "" {
		cfg.DigestStyle = v
	}

	return cfg, nil
}

func splitChannels(raw string) []string {
	var channels []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			channels = append(channels, part)
		}
	}
	return channels
}

func intFromEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s is not an integer: %q", key, raw)
	}
	return value, nil
}
