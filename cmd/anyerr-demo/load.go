package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/xgx-io/xgx-anyerr/internal/kvfile"
)

var loadCmd = &cobra.Command{
	Use:   "load <path>",
	Short: "Load a key = value file",
	Long:  `Load parses a key = value file and prints its entries sorted by key.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	m, err := kvfile.Load(args[0])
	if err != nil {
		return err
	}
	slog.Debug("loaded file", "path", args[0], "entries", len(m))

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", k, m[k])
	}
	return nil
}
