package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/overtime/internal/config"
	"github.com/javiermolinar/overtime/internal/duration"
	"github.com/javiermolinar/overtime/internal/logger"
	"github.com/javiermolinar/overtime/internal/overtime"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	configPath string
	root       *cobra.Command
	log        *zap.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	hours   string // raw --hours value, parsed on use
	noColor bool
	debug   bool // Enable debug logging to stderr
}

// NewApp creates a new CLI application with the given config. configPath is
// where the config command reads and writes the file.
func NewApp(cfg *config.Config, configPath string) *App {
	a := &App{
		config:     cfg,
		configPath: configPath,
		log:        zap.NewNop(),
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}

	a.root = &cobra.Command{
		Use:   "overtime FILE",
		Short: "Helps you calculate your overtime",
		Long: `Overtime sums the shifts in a plain-text log and subtracts your
contracted weekly time once per week.

Each line lists the shifts of one day, separated by "/":

  12:30-17:00 / 19:00-23:50

A blank line ends a week. Lines starting with "#" or "//" are comments.
Use "-" as FILE to read from stdin.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			a.setup()
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			total, err := a.total(args[0])
			if err != nil {
				return err
			}
			a.printTotal(total)
			return nil
		},
	}

	a.root.PersistentFlags().StringVarP(&a.hours, "hours", "h", strconv.Itoa(cfg.Overtime.WeeklyHours),
		"Determines the contract's weekly time required to work")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to stderr)")
	// -h belongs to --hours, so help is long-form only.
	a.root.PersistentFlags().Bool("help", false, "Help for overtime")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.weeksCmd())
	a.root.AddCommand(a.configCmd())

	return a
}

// SetIO redirects the streams used by every command.
func (a *App) SetIO(stdin io.Reader, stdout, stderr io.Writer) {
	a.stdin = stdin
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetIn(stdin)
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
}

// SetArgs overrides the command-line arguments, mainly for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.stdout, "overtime %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	defer func() { logger.Sync(a.log) }()
	return a.root.Execute()
}

// setup applies the output flags once they are parsed.
func (a *App) setup() {
	applyColorMode(a.config.UI.Color, a.noColor)
	a.log = logger.New(a.stderr, a.debug)
}

// weeklyAllowance parses the --hours flag, falling back to the configured
// allowance when the flag was not given.
func (a *App) weeklyAllowance() (duration.Duration, error) {
	if !a.root.PersistentFlags().Changed("hours") {
		return a.config.WeeklyAllowance(), nil
	}
	hours, err := strconv.Atoi(a.hours)
	if err != nil {
		return duration.Duration{}, fmt.Errorf("--hours/-h argument must be a valid integer not: %s", a.hours)
	}
	return duration.FromHours(hours), nil
}

// aggregator builds an Aggregator for the configured allowance.
func (a *App) aggregator() (*overtime.Aggregator, error) {
	allowance, err := a.weeklyAllowance()
	if err != nil {
		return nil, err
	}
	agg := overtime.New(allowance, a.log)
	a.log.Debug("weekly allowance", zap.Int("minutes", agg.Allowance().Minutes()))
	return agg, nil
}

// total computes the net overtime of the shift log at path.
func (a *App) total(path string) (duration.Duration, error) {
	agg, err := a.aggregator()
	if err != nil {
		return duration.Duration{}, err
	}

	in, err := a.openInput(path)
	if err != nil {
		return duration.Duration{}, err
	}
	defer func() { _ = in.Close() }()

	return agg.Total(overtime.Lines(in))
}
