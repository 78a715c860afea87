package commands

import (
	"log/slog"
	"os"
	"time"

	"shotcharts-backend/lib/configutil"
	"shotcharts-backend/lib/scrapers/bref"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/time/rate"
)

type Config struct {
	BaseUrl string `json:"base_url"`
	// RequestIntervalSeconds overrides the courtesy gap between fetches.
	RequestIntervalSeconds float64 `json:"request_interval_seconds"`
}

func fatal(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func createClient() *bref.Client {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		fatal("failed to read config", err)
	}

	opts := bref.ClientOptions{BaseUrl: cfg.BaseUrl}
	if cfg.RequestIntervalSeconds > 0 {
		interval := time.Duration(cfg.RequestIntervalSeconds * float64(time.Second))
		opts.Limiter = rate.NewLimiter(rate.Every(interval), 1)
	}

	client, err := bref.NewClient(opts)
	if err != nil {
		fatal("failed to initialize scraper client", err)
	}
	return client
}
