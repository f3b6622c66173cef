package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/mcao2/deckcheck/internal/config"
	"github.com/mcao2/deckcheck/internal/pitchdeck"
	"github.com/mcao2/deckcheck/internal/ui"
	"github.com/mcao2/deckcheck/internal/workflow"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// width of the report written by --print
const printWidth = 100

type rootOptions struct {
	configPath string
	apiURL     string
	agents     bool
	debug      bool
	check      bool
	print      bool
}

// NewRootCommand creates the root command
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "deckcheck [file.pdf]",
		Short: "Pitch deck verification and due diligence in the terminal",
		Long: `deckcheck uploads a pitch deck PDF to the analysis service, waits for the
claims to be extracted and verified, and shows the report along with the
questions to ask the founder.

Pass a PDF to preselect it, or press o inside the app to pick one.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load(".env")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: ~/.config/deckcheck/config.yaml)")
	rootCmd.Flags().StringVar(&opts.apiURL, "api-url", "", "analysis service base URL (overrides config and "+config.APIURLEnv+")")
	rootCmd.Flags().BoolVar(&opts.agents, "agents", false, "start with multi-agent analysis selected")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "write a debug log to debug.log")
	rootCmd.Flags().BoolVar(&opts.check, "check", false, "check that the analysis service is reachable and exit")
	rootCmd.Flags().BoolVar(&opts.print, "print", false, "analyze the given file without the UI and print the report")

	rootCmd.AddCommand(newConfigCommand(opts))
	rootCmd.AddCommand(newVersionCommand(version))

	return rootCmd
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			if version == "" {
				version = "dev"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deckcheck %s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(o.debug)
	if err != nil {
		return err
	}
	defer closeLog()

	if o.print && len(args) == 0 {
		return errors.New("--print requires a PDF file")
	}

	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}

	client := pitchdeck.NewClient(cfg.APIURL, pitchdeck.WithLogger(log.Default()))
	if o.check {
		return runCheck(cmd.Context(), cmd.OutOrStdout(), client)
	}

	mode := cfg.Mode()
	if o.agents {
		mode = pitchdeck.ModeMultiAgent
	}
	ctrl := workflow.NewController(client, mode)

	if len(args) == 1 {
		doc, err := pitchdeck.OpenDocument(args[0])
		if err != nil {
			return err
		}
		ctrl.SelectFile(doc)
	}

	if o.print {
		return runPrint(cmd.Context(), cmd.OutOrStdout(), ctrl)
	}

	p := tea.NewProgram(
		ui.NewModel(cfg, ctrl),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.apiURL != "" {
		cfg.APIURL = o.apiURL
	}
	return cfg, nil
}

// setupLogging routes the standard logger to debug.log, or discards it.
// The UI owns the terminal, so nothing is ever logged to stdout.
func setupLogging(debug bool) (func(), error) {
	if !debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile("debug.log", "deckcheck")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func runCheck(ctx context.Context, w io.Writer, client *pitchdeck.Client) error {
	status, err := client.Health(ctx)
	if err != nil {
		var te *pitchdeck.TransportError
		if errors.As(err, &te) {
			return fmt.Errorf("%s (%s)", te.Detail(), client.BaseURL())
		}
		return err
	}

	fmt.Fprintf(w, "%s: %s", client.BaseURL(), status.Status)
	if status.Service != "" {
		fmt.Fprintf(w, " (%s)", status.Service)
	}
	fmt.Fprintln(w)
	return nil
}

func runPrint(ctx context.Context, w io.Writer, ctrl *workflow.Controller) error {
	lipgloss.SetColorProfile(termenv.Ascii)

	if err := ctrl.Run(ctx); err != nil {
		return err
	}

	s := ctrl.State()
	fmt.Fprintln(w, ui.RenderReport(s.Result, s.Upload, ui.DefaultStyles(), printWidth))
	return nil
}
