package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"logreport/internal/filters"
	internalhttp "logreport/internal/http"
	"logreport/internal/ingestors"
	"logreport/internal/reports"
	"logreport/internal/shared/configs"
	"logreport/internal/shared/loggers"
	"logreport/internal/shared/svcerrors"
	"logreport/internal/shared/ulid"
)

// App wires the report pipeline and maps its outcome to a process exit code.
// The report, the "no data" messages and all warnings go to stdout;
// structured diagnostics go to stderr through the logger.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	stdout    io.Writer

	reader        ingestors.SourceReader
	metricsServer *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config, stdout io.Writer) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "logreport").
		Str(loggers.FieldRunID, ulid.NewULID()).
		Logger()

	app := &App{
		config:    config,
		appLogger: appLogger,
		stdout:    stdout,
	}

	// Warnings are a side channel of ingestion: printed inline as they are
	// discovered, never fatal.
	app.reader = ingestors.NewSourceReader(ingestors.WarningFunc(app.printWarning))

	if config.MetricsAddr != "" {
		httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
		app.metricsServer = &http.Server{
			Addr:              config.MetricsAddr,
			Handler:           internalhttp.NewRouter(httpLogger),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return app, nil
}

// Run executes the pipeline: ingest, optionally filter by date, resolve the
// report kind, render. The returned value is the process exit code.
func (app *App) Run(ctx context.Context) int {
	start := time.Now()
	ctx = app.appLogger.WithContext(ctx)

	app.startMetricsServer()
	defer app.stopMetricsServer()

	ingestLogger := app.appLogger.With().Str(loggers.FieldComponent, "ingest").Logger()
	records := app.reader.ReadAll(ingestLogger.WithContext(ctx), app.config.Files)
	if len(records) == 0 {
		// Every source was attempted and nothing usable came back.
		return app.fail(errNoRecordsIngested())
	}

	if app.config.HasDate() {
		filterLogger := app.appLogger.With().Str(loggers.FieldComponent, "filter").Logger()
		records = filters.ByDate(filterLogger.WithContext(ctx), records, app.config.Day())
		if len(records) == 0 {
			// Benign: a day with no matching activity is an answer, not an
			// error. Pre-filter emptiness above means bad input; this does not.
			fmt.Fprintf(app.stdout, "No log entries found for date %s\n", app.config.Date)
			return 0
		}
	}

	report, err := reports.Get(app.config.Report)
	if err != nil {
		return app.fail(err)
	}

	reportLogger := app.appLogger.With().
		Str(loggers.FieldComponent, "report").
		Str(loggers.FieldReport, report.Name()).
		Logger()
	out, err := report.Generate(reportLogger.WithContext(ctx), records)
	if err != nil {
		return app.fail(err)
	}
	fmt.Fprintln(app.stdout, out)

	app.appLogger.Debug().
		Dur(loggers.FieldDuration, time.Since(start)).
		Int("records", len(records)).
		Msg("run completed")
	return 0
}

func (app *App) printWarning(w ingestors.Warning) {
	fmt.Fprintln(app.stdout, w)
}

// fail prints the fatal message to stdout, logs the underlying cause, and
// returns the exit code the error maps to.
func (app *App) fail(err error) int {
	svcErr, ok := svcerrors.As(err)
	if !ok {
		svcErr = svcerrors.NewInternalErrorUndefined(err)
	}

	fmt.Fprintf(app.stdout, "Error: %s\n", svcErr.Message)
	app.appLogger.Error().
		Err(svcErr.Cause).
		Str(loggers.FieldErrorCode, svcErr.Code).
		Msg(svcErr.Message)
	return svcErr.ExitCode
}

func (app *App) startMetricsServer() {
	if app.metricsServer == nil {
		return
	}
	go func() {
		if err := app.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.appLogger.Error().Err(err).Msg("metrics server failed")
		}
	}()
	app.appLogger.Info().Str("addr", app.metricsServer.Addr).Msg("serving metrics")
}

func (app *App) stopMetricsServer() {
	if app.metricsServer == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := app.metricsServer.Shutdown(shutdownCtx); err != nil {
		app.appLogger.Warn().Err(err).Msg("metrics server shutdown failed")
	}
}
