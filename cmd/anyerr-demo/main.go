// Package main is a small CLI that shows how containers render.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	anyerr "github.com/xgx-io/xgx-anyerr"
)

var (
	mode    string
	logJSON bool
)

var rootCmd = &cobra.Command{
	Use:           "anyerr-demo",
	Short:         "Demonstrate anyerr error chains",
	Long:          `anyerr-demo runs small tasks that fail with layered errors and prints them in the selected rendering mode.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		report(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&mode, "mode", "report", "error rendering: display|chain|report|debug")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "also log the error as JSON on stderr")
	rootCmd.AddCommand(loadCmd)
}

// render formats err according to the --mode flag.
func render(err error, mode string) (string, error) {
	ae := anyerr.From(err)
	switch mode {
	case "display":
		return fmt.Sprintf("%v", ae), nil
	case "chain":
		return fmt.Sprintf("%+s", ae), nil
	case "report":
		return fmt.Sprintf("Error: %+v", ae), nil
	case "debug":
		return fmt.Sprintf("%#v", ae), nil
	default:
		return "", anyerr.Errorf("unknown mode %q", mode)
	}
}

func report(err error) {
	if logJSON {
		logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
		logger.Error("command failed", "error", anyerr.From(err))
	}
	out, rerr := render(err, mode)
	if rerr != nil {
		out, _ = render(err, "report")
	}
	fmt.Fprintln(os.Stderr, out)
}
