package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"paintings/internal/configutil"
	"paintings/internal/telemetry"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

type Config struct {
	// Input is the HTML page holding the carousel.
	Input string `json:"input"`
	// Output is where the JSON array of paintings is written.
	Output    string           `json:"output"`
	Verbose   bool             `json:"verbose"`
	Telemetry telemetry.Config `json:"telemetry"`
}

var defaultConfig = Config{
	Input:  "files/van-gogh-paintings.html",
	Output: "extracted-paintings.json",
}

// state is shared by every command of a single invocation.
type state struct {
	configPath string
	input      string
	output     string
	verbose    bool

	config Config
	otel   telemetry.Telemetry
}

func (s *state) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := configutil.ReadConfigOr(s.configPath, defaultConfig)
	if err != nil {
		return fmt.Errorf("read config %s: %w", s.configPath, err)
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = s.input
	}
	if flags.Changed("output") {
		cfg.Output = s.output
	}
	if flags.Changed("verbose") {
		cfg.Verbose = s.verbose
	}
	s.config = cfg

	telemetry.InitSlog(cmd.ErrOrStderr(), cfg.Verbose)

	s.otel, err = telemetry.Setup(cmd.Context(), "paintings", cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	return nil
}

func (s *state) shutdown() {
	err := s.otel.Shutdown(context.Background())
	if err != nil {
		slog.Warn("failed to flush telemetry", "err", err)
	}
}

// NewRootCmd builds the command tree. Running the root command without a
// subcommand performs a full extraction.
func NewRootCmd() (*cobra.Command, func()) {
	s := &state{}

	rootCmd := &cobra.Command{
		Use:   "paintings [--input <page.html>] [--output <paintings.json>]",
		Short: "paintings extracts the paintings carousel of a saved search page into JSON.",
		Long: `paintings reads a saved search result page, finds the g-scrolling-carousel
knowledge panel in it and writes every card that has a name and a link to a JSON
array of {name, extensions, link, thumbnail} objects.

Defaults can be set in paintings.json5 (and paintings.local.json5), flags take
precedence over the config file.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.setup,
		RunE:              s.runExtract,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&s.configPath, "config", "paintings.json5", "The json5 config file to read defaults from.")
	flags.StringVarP(&s.input, "input", "i", defaultConfig.Input, "The HTML file to extract paintings from.")
	flags.StringVarP(&s.output, "output", "o", defaultConfig.Output, "The JSON file to write paintings to.")
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "Enables debug logging.")

	rootCmd.AddCommand(newPreviewCmd(s))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd, s.shutdown
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rootCmd, shutdown := NewRootCmd()
	defer shutdown()

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.ExecuteContext(ctx)
}

func ExecuteContext(ctx context.Context) {
	err := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
