package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/fsinspect/inspect"
)

type transferResult struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	Exists      bool   `json:"exists" yaml:"exists"`
}

type linkResult struct {
	Link   string `json:"link" yaml:"link"`
	Source string `json:"source" yaml:"source"`
	Exists bool   `json:"exists" yaml:"exists"`
}

type touchResult struct {
	Path    string `json:"path" yaml:"path"`
	Created bool   `json:"created" yaml:"created"`
}

func (a *app) copyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Copy a file, directory or symbolic link",
		Long: `Copy copies SRC to DST. Directories are copied recursively and symbolic
links are recreated rather than followed. A file copied onto an existing
directory lands inside it. A directory or link requires DST not to exist.`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(_ *cobra.Command, args []string) error {
			ok, err := a.inspector.Copy(args[0], args[1])
			if err != nil {
				return err
			}
			return a.print(transferResult{Source: args[0], Destination: args[1], Exists: ok})
		},
	}
}

func (a *app) moveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move SRC DST",
		Short: "Move or rename a path",
		Long: `Move renames SRC to DST. When DST is an existing directory SRC moves inside
it. Moves across devices fall back to copy and delete.`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(_ *cobra.Command, args []string) error {
			ok, err := a.inspector.Move(args[0], args[1])
			if err != nil {
				return err
			}
			return a.print(transferResult{Source: args[0], Destination: args[1], Exists: ok})
		},
	}
}

func (a *app) mkdirCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir PATH...",
		Short: "Create directories and any missing parents",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			out := make([]inspect.Descriptor, 0, len(args))
			for _, p := range args {
				if err := a.inspector.Mkdir(p); err != nil {
					return err
				}
				d, err := a.inspector.Describe(p)
				if err != nil {
					return err
				}
				out = append(out, d)
			}
			return a.print(out)
		},
	}
}

func (a *app) mklinkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mklink LINK SOURCE",
		Short: "Create a symbolic link",
		Long: `Mklink creates LINK as a symbolic link pointing at SOURCE. SOURCE is stored
as given and need not exist. LINK must not exist.`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(_ *cobra.Command, args []string) error {
			ok, err := a.inspector.Mklink(args[0], args[1])
			if err != nil {
				return err
			}
			return a.print(linkResult{Link: args[0], Source: args[1], Exists: ok})
		},
	}
}

func (a *app) touchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "touch PATH...",
		Short: "Create empty files",
		Long: `Touch creates an empty file at each PATH. Existing paths are left untouched
and reported with created false. The parent directory must exist.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			out := make([]touchResult, 0, len(args))
			for _, p := range args {
				created, err := a.inspector.Touch(p)
				if err != nil {
					return err
				}
				out = append(out, touchResult{Path: p, Created: created})
			}
			return a.print(out)
		},
	}
}
