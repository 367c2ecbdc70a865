// Package cli implements the fsinspect command tree.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/fsinspect/fs/core"
	"github.com/jmgilman/go/fsinspect/inspect"
	"github.com/jmgilman/go/fsinspect/internal/config"
	"github.com/jmgilman/go/fsinspect/internal/logging"
)

type globalFlags struct {
	backend    string
	format     string
	configFile string
	envFile    string
	workDir    string
	verbose    bool
}

// app carries the state shared by every subcommand of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer
	flags  globalFlags

	cfg       *config.Config
	logger    *logging.ConsoleLogger
	inspector *inspect.Inspector

	openFS     func(*config.Config) (core.FS, error)
	isTerminal func() bool
	lookupEnv  func(string) (string, bool)
}

func newApp(out, errOut io.Writer) *app {
	a := &app{
		out:       out,
		errOut:    errOut,
		openFS:    openBackend,
		lookupEnv: os.LookupEnv,
	}
	a.isTerminal = func() bool { return isTerminal(a.out) }
	return a
}

// Execute runs fsinspect with the process arguments. A failure is written to
// stderr as a JSON error document and returned for ExitCodeForError.
func Execute() error {
	a := newApp(os.Stdout, os.Stderr)
	return a.execute(a.rootCommand())
}

func (a *app) execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		a.printError(err)
	}
	return err
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "fsinspect",
		Short: "Inspect and manipulate filesystem paths",
		Long: `fsinspect describes paths, walks directory trees, hashes files and performs
copy, move, mkdir, symlink and touch operations on a local, in-memory or
S3-compatible filesystem.

Results are written to stdout as JSON or YAML. Errors are written to stderr
as a JSON document.

Exit Codes:
  0  - Success
  1  - Unknown or internal error
  2  - CLI usage error or invalid configuration
  3  - Panic
  4  - Path not found
  5  - Path already exists
  6  - Invalid argument
  7  - Access denied
  8  - Operation not supported by the backend
  9  - I/O error`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.backend, "backend", config.BackendLocal, "Filesystem backend: local, memory or s3")
	pf.StringVar(&a.flags.format, "format", config.FormatJSON, "Output format: json or yaml")
	pf.StringVar(&a.flags.configFile, "config", "", "Path to a YAML config file (default ./"+config.ConfigFileName+" if present)")
	pf.StringVar(&a.flags.envFile, "env-file", "", "Path to a .env file (default ./"+config.EnvFileName+" if present)")
	pf.StringVar(&a.flags.workDir, "workdir", "", "Directory relative paths resolve against")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable verbose output")

	root.AddCommand(
		a.describeCommand(),
		a.treeCommand(),
		a.hashCommand(),
		a.copyCommand(),
		a.moveCommand(),
		a.mkdirCommand(),
		a.mklinkCommand(),
		a.touchCommand(),
		a.pathCommand(),
		a.versionCommand(),
	)
	return root
}

// setup resolves configuration and opens the backend before any subcommand
// runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.flags.configFile,
		EnvFile:    a.flags.envFile,
		LookupEnv:  a.lookupEnv,
		Overrides:  []func(*config.Config){a.flagOverrides(cmd)},
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.NewWriterLogger(a.errOut, a.flags.verbose)

	fsys, err := a.openFS(cfg)
	if err != nil {
		return err
	}

	opts := []inspect.Option{inspect.WithLogger(a.logger)}
	if cfg.WorkDir != "" {
		opts = append(opts, inspect.WithWorkDir(cfg.WorkDir))
	}
	a.inspector = inspect.New(fsys, opts...)

	a.logger.Verbose("backend %s, working directory %s", cfg.Backend, a.inspector.WorkDir())
	return nil
}

// flagOverrides applies only the flags the user set, so unset flags do not
// mask the config file or the environment.
func (a *app) flagOverrides(cmd *cobra.Command) func(*config.Config) {
	return func(c *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("backend") {
			c.Backend = a.flags.backend
		}
		if flags.Changed("format") {
			c.Format = a.flags.format
		}
		if flags.Changed("workdir") {
			c.WorkDir = a.flags.workDir
		}
	}
}
