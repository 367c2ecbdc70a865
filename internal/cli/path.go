package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/fsinspect/inspect"
)

type pathResult struct {
	Mode string `json:"mode" yaml:"mode"`
	Path string `json:"path" yaml:"path"`
}

func (a *app) pathCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "path ROOT SEGMENT...",
		Short: "Join path segments onto a root",
		Long: `Path joins and cleans SEGMENTs. In absolute mode the result is joined onto
ROOT; in relative mode ROOT is ignored. The filesystem is not consulted.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := inspect.ParsePathMode(mode)
			if err != nil {
				return err
			}
			p, err := inspect.BuildPath(m, args[0], args[1:]...)
			if err != nil {
				return err
			}
			return a.print(pathResult{Mode: m.String(), Path: p})
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", inspect.PathAbsolute.String(), "Path mode: absolute or relative")
	return cmd
}
