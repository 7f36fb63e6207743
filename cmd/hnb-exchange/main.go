package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/damon-houk/hnb-exchange/internal/application/service"
	"github.com/damon-houk/hnb-exchange/internal/config"
	"github.com/damon-houk/hnb-exchange/internal/infrastructure/api"
	"github.com/damon-houk/hnb-exchange/internal/infrastructure/logger"
	"github.com/damon-houk/hnb-exchange/internal/infrastructure/metrics"
	"github.com/damon-houk/hnb-exchange/internal/infrastructure/middleware"
	"github.com/damon-houk/hnb-exchange/internal/infrastructure/render"
	"github.com/spf13/pflag"
)

const (
	appName = "hnb-exchange"
	version = "0.1.0"

	exitOK               = 0
	exitFailure          = 1
	exitInvalidArguments = 2
)

type options struct {
	currency  string
	startDate string
	endDate   string
	pastDays  string
	version   bool
}

func (o options) rangeArgs() service.RangeArgs {
	return service.RangeArgs{
		Currency:  o.currency,
		StartDate: o.startDate,
		EndDate:   o.endDate,
		PastDays:  o.pastDays,
	}
}

func newFlagSet(output io.Writer) (*pflag.FlagSet, *options) {
	opts := &options{}

	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVarP(&opts.currency, "currency", "c", "", "Currency short name")
	fs.StringVarP(&opts.startDate, "start-date", "s", "", "Start date in format yyyy-MM-dd")
	fs.StringVarP(&opts.endDate, "end-date", "e", "", "End date in format yyyy-MM-dd")
	fs.StringVarP(&opts.pastDays, "past-days", "p", "", "Past days (cannot be combined with --start-date or --end-date)")
	fs.BoolVarP(&opts.version, "version", "V", false, "Print version information")

	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [flags]\n\nFlags:\n%s\nEnvironment:\n%s", appName, fs.FlagUsages(), config.Usage())
	}

	return fs, opts
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs, opts := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "error: %s: %v\n", service.StageInvalidArguments, err)
		return exitInvalidArguments
	}
	if opts.version {
		fmt.Fprintf(stdout, "%s %s\n", appName, version)
		return exitOK
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "error: %s: unexpected argument %q\n", service.StageInvalidArguments, fs.Arg(0))
		return exitInvalidArguments
	}

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(stderr, "error: configuration: %v\n", err)
		return exitFailure
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(stderr, "error: configuration: %v\n", err)
		return exitFailure
	}

	requestID := middleware.NewRequestID()
	log := logger.NewJSONLogger(stderr, level).WithFields(map[string]interface{}{
		"app":    appName,
		"run_id": requestID,
	})
	logger.SetDefaultLogger(log)

	ctx := middleware.WithRequestID(context.Background(), requestID)
	m := metrics.NewMetrics()

	// No client timeout: the transport defaults apply
	httpClient := &http.Client{
		Transport: middleware.Chain(http.DefaultTransport,
			middleware.RequestIDTransport,
			middleware.LoggingTransport(log),
			middleware.MetricsTransport(m),
		),
	}

	rateAPI := api.NewHNBAPIClient(cfg.API.BaseURL, httpClient, log)
	svc := service.NewExchangeRateService(service.NewDateRangeResolver(nil), rateAPI, m, log)
	renderer := render.NewConsoleRenderer(stdout)

	code := fetchAndRender(ctx, svc, renderer, opts.rangeArgs(), stderr)

	if cfg.Metrics.TextfilePath != "" {
		if err := m.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			log.Warn("Failed to write metrics", map[string]interface{}{
				"path":  cfg.Metrics.TextfilePath,
				"error": err.Error(),
			})
		}
	}

	return code
}

func fetchAndRender(ctx context.Context, svc *service.ExchangeRateService, renderer *render.ConsoleRenderer, args service.RangeArgs, stderr io.Writer) int {
	query, err := svc.ResolveQuery(ctx, args)
	if err != nil {
		return report(stderr, err)
	}

	if err := renderer.RenderHeader(query); err != nil {
		return report(stderr, err)
	}

	rates, err := svc.FetchRates(ctx, query)
	if err != nil {
		return report(stderr, err)
	}

	if err := renderer.Render(rates); err != nil {
		return report(stderr, err)
	}

	return exitOK
}

func report(stderr io.Writer, err error) int {
	stage := service.FailureStage(err)
	fmt.Fprintf(stderr, "error: %s: %v\n", stage, err)

	if stage == service.StageInvalidArguments {
		return exitInvalidArguments
	}
	return exitFailure
}
