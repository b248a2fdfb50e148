package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Public API key embedded in the weather.com frontend JS, not a secret.
const DefaultAPIKey = "e1f10a1e78da46f5b10a1e78da96f525"

type Cfg struct {
	Geocode  string
	APIKey   string
	Language string
	Units    string

	MQTTHost          string
	MQTTPort          int
	MQTTUsername      string
	MQTTPassword      string
	MQTTClientID      string
	TopicPrefix       string
	Retain            bool
	HADiscovery       bool
	HADiscoveryPrefix string

	LogLevel string
	DryRun   bool
}

// Load reads configuration from the environment and validates it.
// WU_GEOCODE is the only required setting.
func Load() (*Cfg, error) {
	cfg := &Cfg{
		Geocode:  os.Getenv("WU_GEOCODE"),
		APIKey:   getenvDefault("WU_API_KEY", DefaultAPIKey),
		Language: getenvDefault("WU_LANGUAGE", "fr-FR"),
		Units:    getenvDefault("WU_UNITS", "m"),

		MQTTHost:          getenvDefault("MQTT_HOST", "localhost"),
		MQTTPort:          getenvInt("MQTT_PORT", 1883),
		MQTTUsername:      os.Getenv("MQTT_USERNAME"),
		MQTTPassword:      os.Getenv("MQTT_PASSWORD"),
		MQTTClientID:      getenvDefault("MQTT_CLIENT_ID", "wu-mqtt-bridge"),
		TopicPrefix:       getenvDefault("MQTT_TOPIC_PREFIX", "weather"),
		Retain:            getenvBool("MQTT_RETAIN", true),
		HADiscovery:       getenvBool("MQTT_HA_DISCOVERY", true),
		HADiscoveryPrefix: getenvDefault("MQTT_HA_DISCOVERY_PREFIX", "homeassistant"),

		LogLevel: strings.ToLower(getenvDefault("LOG_LEVEL", "info")),
		DryRun:   getenvBool("DRY_RUN", false),
	}

	if err := validateGeocode(cfg.Geocode); err != nil {
		return nil, err
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn or error")
	}

	return cfg, nil
}

func validateGeocode(geocode string) error {
	if geocode == "" {
		return fmt.Errorf("WU_GEOCODE must be set to 'latitude,longitude' (e.g. '48.86,2.35')")
	}

	parts := strings.Split(geocode, ",")
	if len(parts) != 2 {
		return fmt.Errorf("WU_GEOCODE must be 'latitude,longitude' (e.g. '48.86,2.35')")
	}

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if latErr != nil || lonErr != nil {
		return fmt.Errorf("WU_GEOCODE must contain valid numbers")
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("latitude must be -90..90 and longitude -180..180")
	}

	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
