package main

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"

	"braces.dev/errtrace"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ghettovoice/gohttp/header"
	"github.com/ghettovoice/gohttp/internal/errorutil"
	"github.com/ghettovoice/gohttp/internal/log"
	"github.com/ghettovoice/gohttp/internal/rawhead"
)

const envPrefix = "hdrcheck"

// config holds defaults read from HDRCHECK_* environment variables.
// Command line flags take precedence.
type config struct {
	LogLevel string `envconfig:"log_level" default:"info"`
	Dev      bool   `envconfig:"dev"`
	Strict   bool   `envconfig:"strict"`
	JSON     bool   `envconfig:"json"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return config{}, errtrace.Wrap(err)
	}
	return cfg, nil
}

type rootCommand struct {
	cfg config
	log *slog.Logger
	cmd *cobra.Command

	in          io.Reader
	out, errOut io.Writer
}

func newRootCommand(in io.Reader, out, errOut io.Writer) *rootCommand {
	c := &rootCommand{
		in:     in,
		out:    out,
		errOut: errOut,
		log:    log.Noop,
	}
	c.cmd = &cobra.Command{
		Use:               "hdrcheck [file]",
		Short:             "Parse and re-format an HTTP header block",
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
		RunE:              c.run,
	}
	c.cmd.SetIn(in)
	c.cmd.SetOut(out)
	c.cmd.SetErr(errOut)

	cfg, err := loadConfig()
	if err != nil {
		// invalid environment is reported on run
		c.cmd.PreRunE = func(*cobra.Command, []string) error { return errtrace.Wrap(err) }
		cfg = config{LogLevel: "info"}
	}
	c.cfg = cfg
	c.cmd.Flags().AddFlagSet(c.flagSet())
	return c
}

func (c *rootCommand) flagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.BoolVar(&c.cfg.JSON, "json", c.cfg.JSON, "write one JSON object per field instead of header lines")
	flags.BoolVar(&c.cfg.Strict, "strict", c.cfg.Strict, "fail if any field is malformed")
	flags.BoolVar(&c.cfg.Dev, "dev", c.cfg.Dev, "use the developer log handler")
	flags.StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "log level: debug, info, warn or error")
	return flags
}

func (c *rootCommand) persistentPreRunE(*cobra.Command, []string) error {
	lvl, err := log.ParseLevel(c.cfg.LogLevel)
	if err != nil {
		return errtrace.Wrap(err)
	}
	c.log = log.New(c.errOut, lvl, c.cfg.Dev)
	return nil
}

func (c *rootCommand) run(cmd *cobra.Command, args []string) error {
	in := c.in
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errtrace.Wrap(err)
		}
		defer f.Close()
		in = f
	}

	blk, err := rawhead.Read(in)
	if err != nil {
		if perr := (*rawhead.ParseError)(nil); errors.As(err, &perr) {
			c.log.LogAttrs(cmd.Context(), slog.LevelError, "malformed header block",
				slog.Int("line", perr.Line),
				slog.Any("text", log.StringValue(perr.Buf)),
			)
		}
		return errtrace.Wrap(err)
	}
	c.log.LogAttrs(cmd.Context(), slog.LevelDebug, "header block read", slog.Int("fields", blk.Len()))

	f := header.NewFormatter(c.out, &header.FormatterOptions{Logger: c.log})
	var errs []error
	for name, raw := range blk.Each() {
		hdr, err := header.ParseNamed(name, raw)
		if err != nil {
			errs = append(errs, err)
			c.log.LogAttrs(cmd.Context(), slog.LevelWarn, "malformed header field",
				slog.String("field", name),
				slog.Any("raw", raw),
				slog.Any("error", err),
			)
			hdr = header.NewExtension(name, raw.Strings()...)
		}

		if err := c.write(f, hdr); err != nil {
			return errtrace.Wrap(err)
		}
	}

	if c.cfg.Strict && len(errs) > 0 {
		return errtrace.Wrap(errorutil.JoinPrefix("malformed header fields", errs...))
	}
	return nil
}

func (c *rootCommand) write(f *header.Formatter, hdr header.Header) error {
	if !c.cfg.JSON {
		return errtrace.Wrap(f.WriteHeader(hdr))
	}
	data, err := json.Marshal(hdr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if _, err := c.out.Write(append(data, '\n')); err != nil {
		return errtrace.Wrap(err)
	}
	return nil
}
