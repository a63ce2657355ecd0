// Package cli implements the kundli command line tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jyotish/internal/engine/dasha"
	"jyotish/internal/ephemeris"
	"jyotish/internal/infra/ephemeris/analytic"
	"jyotish/internal/observability/logging"
	kundliUC "jyotish/internal/usecase/kundli"
)

// Execute runs the root command against the analytic ephemeris.
func Execute() {
	root := NewRootCommand(analytic.Factory())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries the state shared by subcommands.
type app struct {
	v         *viper.Viper
	providers ephemeris.Factory
}

// NewRootCommand builds the command tree. Birth data flags are persistent
// and may also come from KUNDLI_* variables or a config file.
func NewRootCommand(providers ephemeris.Factory) *cobra.Command {
	a := &app{v: viper.New(), providers: providers}

	root := &cobra.Command{
		Use:           "kundli",
		Short:         "Compute Vedic birth charts",
		Long:          "kundli derives sidereal positions, houses, panchang, avakahada attributes and the Vimshottari dasha for a birth moment.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .kundli.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.String("dob", "", "date of birth, YYYY-MM-DD")
	pf.String("tob", "", "time of birth, HH:MM[:SS]")
	pf.Float64("lat", 0, "latitude in degrees, north positive")
	pf.Float64("lon", 0, "longitude in degrees, east positive")
	pf.Float64("timezone", 0, "UTC offset in hours")
	pf.Int("ayanamsa", int(ephemeris.Lahiri), "ayanamsa id (0 Fagan/Bradley, 1 Lahiri, 3 Raman, 5 Krishnamurti)")
	pf.Int("dasha-depth", dasha.DefaultDepth, "dasha levels to compute (1-3)")

	for _, name := range []string{"verbose", "dob", "tob", "lat", "lon", "timezone", "ayanamsa", "dasha-depth"} {
		_ = a.v.BindPFlag(name, pf.Lookup(name))
	}

	root.AddCommand(a.chartCommand(), a.dashaCommand(), a.panchangCommand())
	return root
}

func (a *app) initConfig(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.SetConfigName(".kundli")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}

	a.v.SetEnvPrefix("KUNDLI")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// request assembles the birth data from flags, environment, and config.
func (a *app) request() kundliUC.Request {
	return kundliUC.Request{
		Dob:      a.v.GetString("dob"),
		Tob:      a.v.GetString("tob"),
		Lat:      a.v.GetFloat64("lat"),
		Lon:      a.v.GetFloat64("lon"),
		Timezone: a.v.GetFloat64("timezone"),
		Ayanamsa: ephemeris.Ayanamsa(a.v.GetInt("ayanamsa")),
	}
}

// service returns a chart service without cache or store; every run
// computes from scratch.
func (a *app) service(stderr io.Writer) *kundliUC.Service {
	level := slog.LevelWarn
	if a.v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(logging.NewHandler(stderr, logging.Options{Level: level, Format: "text"})))

	return &kundliUC.Service{
		Providers: a.providers,
		Dasha:     dasha.Builder{Depth: a.v.GetInt("dasha-depth")},
	}
}
