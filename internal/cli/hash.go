package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/fsinspect/inspect"
)

type hashResult struct {
	Path      string  `json:"path" yaml:"path"`
	Algorithm string  `json:"algorithm" yaml:"algorithm"`
	Digest    *string `json:"digest" yaml:"digest"`
}

func (a *app) hashCommand() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "hash PATH",
		Short: "Compute the hex digest of a file",
		Long: `Hash computes the hex digest of the file at PATH, following symbolic links.
The digest is null when PATH is not a regular file.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			alg, err := inspect.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}

			digest, ok, err := a.inspector.HashWith(args[0], alg)
			if err != nil {
				return err
			}

			res := hashResult{Path: args[0], Algorithm: alg.String()}
			if ok {
				res.Digest = &digest
			}
			return a.print(res)
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", inspect.MD5.String(), "Digest algorithm: md5, sha1 or sha256")
	return cmd
}
