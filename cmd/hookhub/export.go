package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/hookhub/internal/catalog"
	"github.com/MrSnakeDoc/hookhub/internal/sources/yamlfile"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write the built-in catalog as a YAML catalog file",
	Long: `Write the built-in catalog in the format read by HOOKHUB_CATALOG_SOURCE=file.
Without a path the file is printed to stdout. Useful as a starting point for
a custom catalog.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	hooks := catalog.Default()

	if len(args) == 0 {
		data, err := yamlfile.Marshal(hooks)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := yamlfile.Write(args[0], hooks); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d hooks to %s\n", len(hooks), args[0])
	return err
}
