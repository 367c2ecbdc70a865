package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/fsinspect/inspect"
)

func (a *app) describeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe PATH...",
		Short: "Describe one or more paths",
		Long: `Describe reports, for each path, whether it exists and whether it is a
directory, a regular file or a symbolic link, along with its name, stem and
suffix. A missing path is not an error.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			out := make([]inspect.Descriptor, 0, len(args))
			for _, p := range args {
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

func (a *app) treeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree ROOT",
		Short: "Describe every entry below a directory",
		Long: `Tree walks ROOT depth first without following directory symlinks and
reports a descriptor for every entry below it. ROOT is resolved to its
canonical path and must be a directory.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			report, err := a.inspector.WalkTree(args[0])
			if err != nil {
				return err
			}
			return a.print(report)
		},
	}
}
