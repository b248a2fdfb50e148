package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strconv"

	"github.com/diwise/ingress-wunderground/internal/pkg/application/services/mqtt"
	"github.com/diwise/ingress-wunderground/internal/pkg/application/services/weather"
	"github.com/diwise/ingress-wunderground/internal/pkg/infrastructure/config"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/joho/godotenv"
)

const serviceName = "ingress-wunderground"

func main() {
	dryRun := flag.Bool("dry-run", false, "fetch weather data but do not publish to mqtt")
	flag.Parse()

	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %s\n", err.Error())
		os.Exit(1)
	}

	if *dryRun {
		cfg.DryRun = true
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})).With(
		slog.String("service", serviceName),
		slog.String("version", version()),
	)
	ctx := logging.NewContextWithLogger(context.Background(), logger)

	logger.Info("starting up ...", "geocode", cfg.Geocode, "language", cfg.Language, "dry_run", cfg.DryRun)

	svc := weathersvc.NewWeatherService(
		weathersvc.DefaultBaseURL, cfg.Geocode, cfg.APIKey, cfg.Language, cfg.Units,
	)

	data, err := svc.FetchAll(ctx)
	if err != nil {
		logger.Error("failed to retrieve weather data", "err", err.Error())
		fmt.Fprintf(os.Stderr, "failed to retrieve weather data: %s\n", err.Error())
		os.Exit(1)
	}

	logger.Info("weather data retrieved",
		"has_current", data.Current != nil,
		"forecast_days", len(data.Forecast),
		"hourly_entries", len(data.HourlyToday),
	)

	if cfg.DryRun {
		printSummary(data)
		logger.Info("dry run complete")
		return
	}

	client := mqttpub.NewClient(cfg.MQTTHost, cfg.MQTTPort, cfg.MQTTUsername, cfg.MQTTPassword, cfg.MQTTClientID)
	publisher := mqttpub.NewPublisher(mqttpub.Config{
		TopicPrefix:       cfg.TopicPrefix,
		Retain:            cfg.Retain,
		HADiscovery:       cfg.HADiscovery,
		HADiscoveryPrefix: cfg.HADiscoveryPrefix,
	}, client)

	if err := publisher.Connect(ctx); err != nil {
		logger.Error("failed to connect to mqtt broker", "err", err.Error())
		fmt.Fprintf(os.Stderr, "failed to connect to mqtt broker: %s\n", err.Error())
		os.Exit(1)
	}

	err = publisher.PublishWeather(ctx, data)
	publisher.Disconnect(ctx)

	if err != nil {
		logger.Error("failed to publish weather data", "err", err.Error())
		fmt.Fprintf(os.Stderr, "failed to publish weather data: %s\n", err.Error())
		os.Exit(1)
	}

	logger.Info("done")
}

func printSummary(data *weathersvc.WeatherSnapshot) {
	if c := data.Current; c != nil {
		fmt.Printf("current: %s (feels like %s), %s\n",
			fmtFloat(c.Temperature), fmtFloat(c.FeelsLike), fmtString(c.Condition),
		)
		fmt.Printf("  humidity %s%%, wind %s km/h %s\n",
			fmtInt(c.Humidity), fmtFloat(c.WindSpeed), fmtString(c.WindDirection),
		)
	}

	fmt.Printf("forecast (%d days):\n", len(data.Forecast))
	for _, day := range data.Forecast {
		fmt.Printf("  %s %s: %s/%s %s\n",
			day.DayOfWeek, day.Date, fmtFloat(day.TempMin), fmtFloat(day.TempMax), day.Narrative,
		)
	}
}

func fmtFloat(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func fmtInt(v *int) string {
	if v == nil {
		return "n/a"
	}
	return strconv.Itoa(*v)
}

func fmtString(v *string) string {
	if v == nil {
		return "n/a"
	}
	return *v
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	buildSettings := buildInfo.Settings
	infoMap := map[string]string{}
	for _, s := range buildSettings {
		infoMap[s.Key] = s.Value
	}

	sha := infoMap["vcs.revision"]
	if infoMap["vcs.modified"] == "true" {
		sha += "+"
	}

	return sha
}
