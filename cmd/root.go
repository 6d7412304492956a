package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/config"
	"github.com/s0up4200/marquee/filter"
	"github.com/s0up4200/marquee/render"
	"github.com/s0up4200/marquee/screen"
	"github.com/s0up4200/marquee/tmdb"
)

var (
	cfgFile      string
	outputFormat string
	cfg          *config.Config
	logger       zerolog.Logger
	tmdbClient   *tmdb.Client
	loader       *screen.Loader
	filters      *filter.Manager
	formatter    = render.NewConsoleFormatter()

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Browse popular and upcoming movies from TMDB",
	Long: `marquee is a CLI client for The Movie Database. It lists popular and
upcoming movies, resolves genres, and shows movie details with cast.`,
	SilenceUsage: true,
}

// SetVersion sets the build information reported by version and update
func SetVersion(v, built string) {
	version = v
	buildTime = built
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", render.FormatConsole, "output format (console, json, yaml)")
}

// initializeApp loads the configuration and creates the TMDB client
func initializeApp(cmd *cobra.Command, args []string) error {
	if !render.ValidFormat(outputFormat) {
		return fmt.Errorf("invalid output format: %s", outputFormat)
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging, cmd.ErrOrStderr())

	opts := []tmdb.Option{tmdb.WithBaseURL(cfg.TMDB.BaseURL)}
	if cfg.TMDB.Language != "" {
		opts = append(opts, tmdb.WithLanguage(cfg.TMDB.Language))
	}
	tmdbClient = tmdb.NewClient(cfg.TMDB.APIKey, logger, opts...)
	loader = screen.NewLoader(tmdbClient, logger)

	// Compile presets up front so a broken one is reported before any request
	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filter.Expressions()); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// formatOptions builds console options from the loaded config
func formatOptions(showDetails bool) render.FormatOptions {
	return render.FormatOptions{
		ImageBaseURL: cfg.Images.BaseURL,
		PosterSize:   cfg.Images.PosterSize,
		TitleWidth:   cfg.Display.TitleWidth,
		CastLimit:    cfg.Display.CastLimit,
		ShowDetails:  showDetails,
	}
}

// writeOutput prints v in the selected format, using console for the tree view
func writeOutput(cmd *cobra.Command, v any, console func() string) error {
	if strings.EqualFold(outputFormat, render.FormatConsole) {
		_, err := fmt.Fprint(cmd.OutOrStdout(), console())
		return err
	}
	return render.Encode(cmd.OutOrStdout(), outputFormat, v)
}
