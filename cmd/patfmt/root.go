package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/powerman/slogpattern"
	"github.com/powerman/slogpattern/internal/config"
)

const defaultConfigFile = "patfmt.toml"

type rootFlags struct {
	configFile    string
	pattern       string
	timezone      string
	level         string
	loggerKey     string
	lineSeparator string
	verbosity     int
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:   "patfmt [flags] [file...]",
		Short: "Render slog JSON logs using a conversion pattern",
		Long: `patfmt reads slog JSON lines from files (or stdin) and outputs them
formatted using a log4j-style conversion pattern, e.g.

  patfmt -p '%d{ABSOLUTE} %-5p [%t] %c{2} %x - %m %X{err}%n' app.log

%r is measured from the time of the first record.

Configuration is read from a TOML or YAML file, then from PATFMT_*
environment variables, then from flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newDiagLogger(stderr, flags.verbosity)
			err := run(cmd, &flags, args, stdin, stdout, log)
			if err != nil {
				log.Error(cmd.Context(), err.Error())
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configFile, "config", "c", "", "config file (default "+defaultConfigFile+" if exists)")
	f.StringVarP(&flags.pattern, config.KeyPattern, "p", "", "conversion pattern")
	f.StringVar(&flags.timezone, config.KeyTimezone, "", "time zone used by %d (e.g. UTC, Europe/Berlin)")
	f.StringVarP(&flags.level, config.KeyLevel, "l", "", "minimum level of records to output")
	f.StringVar(&flags.loggerKey, "logger-key", "", "key used as logger name")
	f.StringVar(&flags.lineSeparator, "line-separator", "", "output by %n: lf, crlf, cr, native or literal text")
	f.CountVarP(&flags.verbosity, "verbose", "v", "increase verbosity of patfmt's own messages (-v INFO, -vv DEBUG)")

	return cmd
}

// overrides returns config values set by flags.
func (flags *rootFlags) overrides(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)
	for name, pair := range map[string]struct {
		key   string
		value string
	}{
		config.KeyPattern:  {config.KeyPattern, flags.pattern},
		config.KeyTimezone: {config.KeyTimezone, flags.timezone},
		config.KeyLevel:    {config.KeyLevel, flags.level},
		"logger-key":       {config.KeyLoggerKey, flags.loggerKey},
		"line-separator":   {config.KeyLineSeparator, flags.lineSeparator},
	} {
		if cmd.Flags().Changed(name) {
			m[pair.key] = pair.value
		}
	}
	return m
}

func run(cmd *cobra.Command, flags *rootFlags, files []string, stdin io.Reader, stdout io.Writer, log *slogpattern.Logger) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	path := flags.configFile
	if path == "" && config.Exists(defaultConfigFile) {
		path = defaultConfigFile
	}
	cfg, err := config.Load(path, flags.overrides(cmd))
	if err != nil {
		return err
	}
	opts, err := cfg.LayoutOptions()
	if err != nil {
		return err
	}
	log.Debug(ctx, fmt.Sprintf("config file %q, pattern %q", path, cfg.Pattern))

	r := &renderer{
		pattern:   cfg.Pattern,
		opts:      *opts,
		loggerKey: cfg.LoggerKey,
		minLevel:  cfg.MinLevel(),
		log:       log,
	}
	w := bufio.NewWriter(stdout)

	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, name := range files {
		err = renderFile(ctx, r, w, name, stdin)
		if err != nil {
			break
		}
	}
	return errors.Join(err, w.Flush())
}

func renderFile(ctx context.Context, r *renderer, w io.Writer, name string, stdin io.Reader) error {
	in := stdin
	if name != "-" {
		f, err := os.Open(name) //nolint:gosec // File names come from the user.
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close() //nolint:errcheck // Read-only.
		in = f
	}
	if err := r.render(ctx, w, in); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func newDiagLogger(w io.Writer, verbosity int) *slogpattern.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	h := slogpattern.NewPatternHandler(w, &slogpattern.PatternHandlerOptions{
		Pattern: "%c: %-5p %m%n",
		Level:   level,
	})
	return slogpattern.NewLogger("patfmt", h)
}
