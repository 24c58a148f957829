package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/trialplot-go/pkg/trialplot"
)

// Config keys shared by flags, environment (TRIALPLOT_*) and config files.
const (
	keyRoot          = "root"
	keyOutput        = "output"
	keyPrefix        = "prefix"
	keySheet         = "sheet"
	keyProcessingDir = "processing-dir"
	keyExt           = "ext"
	keyOnUnreadable  = "on-unreadable"
	keyMarkerSize    = "marker-size"
	keyLineWidth     = "line-width"
	keyFrequencies   = "frequencies"
	keyReport        = "report"
	keyLogLevel      = "log-level"
	keyLogFormat     = "log-format"
)

// newViper binds the command flags, the environment and the optional config file.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("TRIALPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return v, nil
}

// loadOptions resolves pipeline options from v, starting from the defaults.
func loadOptions(v *viper.Viper) (trialplot.Options, error) {
	opts := trialplot.DefaultOptions(v.GetString(keyRoot))

	if s := v.GetString(keyOutput); s != "" {
		opts.OutputDir = s
	}
	if s := v.GetString(keyPrefix); s != "" {
		opts.FolderPrefix = s
	}
	if s := v.GetString(keySheet); s != "" {
		opts.SheetName = s
	}
	if s := v.GetString(keyProcessingDir); s != "" {
		opts.ProcessingDir = s
	}
	if exts := v.GetStringSlice(keyExt); len(exts) > 0 {
		opts.Extensions = normalizeExtensions(exts)
	}
	if s := v.GetString(keyOnUnreadable); s != "" {
		opts.OnUnreadable = trialplot.UnreadablePolicy(s)
	}
	if f := v.GetFloat64(keyMarkerSize); f > 0 {
		opts.Style.MarkerSize = f
	}
	if f := v.GetFloat64(keyLineWidth); f > 0 {
		opts.Style.LineWidth = f
	}
	if m := v.GetStringMapString(keyFrequencies); len(m) > 0 {
		opts.Frequencies = trialplot.Frequencies(m)
	}

	return opts, opts.Validate()
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

// newLogger builds the process logger on w.
func newLogger(v *viper.Viper, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level: %w", err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	switch v.GetString(keyLogFormat) {
	case "json":
	case "console", "":
		w = zerolog.ConsoleWriter{Out: w}
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format: %s (must be console or json)", v.GetString(keyLogFormat))
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// setup resolves viper and the logger for a command.
func setup(cmd *cobra.Command) (*viper.Viper, zerolog.Logger, error) {
	v, err := newViper(cmd)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	logger, err := newLogger(v, os.Stderr)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return v, logger, nil
}
