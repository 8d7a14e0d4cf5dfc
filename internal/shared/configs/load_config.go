package configs

import (
	"errors"
	"fmt"
	"strings"

	"logreport/internal/shared/validators"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// LoadConfig parses CLI arguments, merges them with environment variables
// (LOGREPORT_*) and an optional YAML config file, and validates the result.
// Precedence: flags over environment over config file over built-in defaults.
var LoadConfig = func(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("logreport", pflag.ContinueOnError)
	fs.StringArray("file", nil, "path to a log file (repeatable)")
	fs.String("report", "", "report kind to generate (average)")
	fs.String("date", "", "only include records from this calendar date (YYYY-MM-DD, UTC)")
	fs.String("log-level", "", "diagnostic log level (trace, debug, info, warn, error)")
	fs.String("metrics-addr", "", "serve /metrics and /healthz on this address for the duration of the run")
	configPath := fs.String("config", "", "optional YAML config file with defaults")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected positional arguments: %s", strings.Join(fs.Args(), " "))
	}

	v := viper.New()
	v.SetDefault("log.level", "warn")
	v.SetEnvPrefix("LOGREPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Flag names follow CLI conventions while config keys are nested, so each
	// flag is bound explicitly.
	_ = v.BindPFlag("files", fs.Lookup("file"))
	_ = v.BindPFlag("report", fs.Lookup("report"))
	_ = v.BindPFlag("date", fs.Lookup("date"))
	_ = v.BindPFlag("log.level", fs.Lookup("log-level"))
	_ = v.BindPFlag("metrics_addr", fs.Lookup("metrics-addr"))

	if *configPath != "" {
		v.SetConfigFile(*configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", *configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, validationError(err)
	}

	return &cfg, nil
}

// validationError flattens validator field errors into one printable error.
// Non-field validation failures are passed through as-is rather than being
// swallowed into an empty message.
func validationError(err error) error {
	var ve validators.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, formatValidationError(e))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// formatValidationError turns a single field error into the message the CLI
// prints. The date message is part of the tool's output contract.
func formatValidationError(e validators.FieldError) string {
	field := fieldPath(e)

	switch {
	case field == "date":
		return fmt.Sprintf("Invalid date format '%v'. Use YYYY-MM-DD format.", e.Value())
	case field == "files":
		return "at least one --file is required"
	case field == "report":
		return "--report is required"
	case field == "metricsaddr":
		return fmt.Sprintf("invalid --metrics-addr %q: expected host:port", e.Value())
	case e.Tag() == "required":
		return fmt.Sprintf("%s (required)", field)
	default:
		return fmt.Sprintf("%s (%s=%s)", field, e.Tag(), e.Param())
	}
}

// fieldPath converts a struct namespace like "Config.Log.Level" into the
// config key path "log.level".
func fieldPath(e validators.FieldError) string {
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			return strings.ToLower(strings.Join(parts[1:], "."))
		}
	}
	return e.Field()
}
