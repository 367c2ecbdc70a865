package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/fsinspect/errors"
	"github.com/jmgilman/go/fsinspect/internal/config"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// print writes v to stdout in the configured format. JSON is indented when
// stdout is a terminal and compact otherwise.
func (a *app) print(v interface{}) error {
	if a.cfg != nil && a.cfg.Format == config.FormatYAML {
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "failed to encode yaml output")
		}
		return errors.Wrap(enc.Close(), errors.CodeIO, "failed to write output")
	}

	var (
		data []byte
		err  error
	)
	if a.isTerminal() {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to encode json output")
	}
	if _, err := fmt.Fprintln(a.out, string(data)); err != nil {
		return errors.Wrap(err, errors.CodeIO, "failed to write output")
	}
	return nil
}

// printError writes err to stderr as a single-line JSON error document.
func (a *app) printError(err error) {
	data, merr := json.Marshal(errors.ToJSON(err))
	if merr != nil {
		fmt.Fprintf(a.errOut, "%v\n", err)
		return
	}
	fmt.Fprintln(a.errOut, string(data))
}
