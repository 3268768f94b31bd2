package cmd

import (
	"log/slog"
	"os"
	"time"

	sentryslog "github.com/getsentry/sentry-go/slog"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func SetBuildVersion(v string, c string, d string) {
	version = v
	commit = c
	date = d
}

// Root represents the base command when called without any subcommands
var Root = &cobra.Command{
	Use:   "untar",
	Short: "Inspect and extract tarballs without touching disk",

	// Dont show CLI usage on error.
	SilenceUsage:  true,
	SilenceErrors: true,
}

var programLevel = new(slog.LevelVar)

func setLogLevel(l slog.Level) {
	programLevel.Set(l)
}

func init() {
	l := slog.New(
		Fanout(
			tint.NewHandler(os.Stderr, &tint.Options{
				Level:      programLevel,
				TimeFormat: time.Kitchen,
			}),
			sentryslog.Option{
				Level: slog.LevelError,
			}.NewSentryHandler(),
		),
	)
	slog.SetDefault(l)

	Root.PersistentFlags().Bool("debug", false, "enable verbose debug logs")

	Root.PersistentFlags().Bool("raw", false, "disable gzip detection; scan the data as-is")
}
