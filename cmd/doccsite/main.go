package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/doccsite/internal/config"
	"git.home.luguber.info/inful/doccsite/internal/errors"
	"git.home.luguber.info/inful/doccsite/internal/export"
	"git.home.luguber.info/inful/doccsite/internal/logfields"
	"git.home.luguber.info/inful/doccsite/internal/metrics"
	"git.home.luguber.info/inful/doccsite/internal/render"
	"git.home.luguber.info/inful/doccsite/internal/target"
)

var CLI struct {
	Force       bool     `short:"f" help:"Overwrite or merge into an existing target directory."`
	Silent      bool     `short:"s" help:"Only log errors."`
	Verbose     bool     `short:"v" help:"Enable verbose logging."`
	KeepHash    bool     `name:"keep-hash" help:"Keep content hash suffixes in copied resource filenames."`
	Config      string   `short:"c" help:"Site configuration file." env:"DOCCSITE_CONFIG"`
	MetricsFile string   `name:"metrics-file" help:"Write Prometheus metrics in text format to this file after the run." env:"DOCCSITE_METRICS_FILE"`
	Paths       []string `arg:"" optional:"" name:"path" help:"Archive bundle paths followed by the target directory."`
}

func main() {
	// Optional .env for the env-backed flags.
	_ = godotenv.Load()

	kong.Parse(&CLI,
		kong.Name("doccsite"),
		kong.Description("Export documentation archive bundles to a static HTML site."),
	)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	if CLI.Silent {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	adapter := errors.NewCLIErrorAdapter(CLI.Verbose, logger)

	archivePaths, targetDir, err := splitArgs(CLI.Paths)
	if err != nil {
		adapter.HandleError(err)
	}

	site := config.Default()
	if CLI.Config != "" {
		site, err = config.Load(CLI.Config)
		if err != nil {
			adapter.HandleError(errors.Internal("failed to load site configuration", err))
		}
	}

	opts := export.DefaultOptions()
	opts.Force = CLI.Force
	opts.KeepHash = CLI.KeepHash

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if CLI.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	exporter := export.New(target.New(targetDir), render.NewHTMLRenderer(site), opts).
		WithRecorder(recorder)
	report, exportErr := exporter.Export(archivePaths)

	if prom != nil {
		if werr := prom.WriteTextfile(CLI.MetricsFile); werr != nil {
			slog.Warn("Failed to write metrics file", logfields.Path(CLI.MetricsFile), logfields.Error(werr))
		}
	}

	if exportErr != nil {
		adapter.HandleError(exportErr)
	}
	report.LogSummary()
}

// splitArgs separates the positional arguments into archive paths and the
// target directory (the last non-flag argument).
func splitArgs(paths []string) ([]string, string, error) {
	if len(paths) < 2 {
		return nil, "", errors.NotEnoughArguments()
	}
	return paths[:len(paths)-1], paths[len(paths)-1], nil
}
