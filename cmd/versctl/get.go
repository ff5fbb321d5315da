package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <resource> <name>",
		Short: "Print one string value from the resource",
		Long: `The get command looks a name up across every string table and prints its
value. Special names "FileVersion" and "ProductVersion" read the fixed
descriptor instead.

Example:
  versctl get app.version.res ProductName
  versctl get app.version.res FileVersion`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args[0], args[1])
		},
	}
}

func runGet(path, name string) error {
	vi, err := loadResource(path)
	if err != nil {
		return err
	}

	var value string
	switch name {
	case "FileVersion":
		value = vi.FileVersion()
	case "ProductVersion":
		value = vi.ProductVersion()
	default:
		var ok bool
		value, ok = vi.Strings()[name]
		if !ok {
			return fmt.Errorf("no string %q in %s", name, path)
		}
	}

	if jsonOut {
		return printJSON(map[string]string{name: value})
	}
	fmt.Println(value)
	return nil
}
