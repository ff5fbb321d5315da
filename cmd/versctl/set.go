package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/verskit/pkg/store"
	"github.com/joshuapare/verskit/pkg/verinfo"
)

func init() {
	rootCmd.AddCommand(newSetCmd())
}

func newSetCmd() *cobra.Command {
	var (
		fileVersion    string
		productVersion string
		stringPairs    []string
		tableKey       string
		create         bool
	)

	cmd := &cobra.Command{
		Use:   "set <resource>",
		Short: "Edit version fields and write the resource back",
		Long: `The set command decodes a resource, applies the requested edits, and
atomically rewrites the file. With --create a fresh resource is built when
the file does not exist yet.

Example:
  versctl set app.version.res --file-version 2.5.100.3
  versctl set app.version.res --string ProductName=Widget --string CompanyName="Example Corp"
  versctl set --create new.version.res --file-version 1.0 --table 040904B0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args[0], fileVersion, productVersion, tableKey, stringPairs, create)
		},
	}

	cmd.Flags().StringVar(&fileVersion, "file-version", "", "Set the file version (major.minor.build.revision)")
	cmd.Flags().StringVar(&productVersion, "product-version", "", "Set the product version")
	cmd.Flags().StringArrayVar(&stringPairs, "string", nil, "Set a string entry as Name=Value (repeatable)")
	cmd.Flags().StringVar(&tableKey, "table", "040904B0", "String table (language+codepage hex) to edit")
	cmd.Flags().BoolVar(&create, "create", false, "Create a fresh resource if the file does not exist")
	return cmd
}

func runSet(path, fileVersion, productVersion, tableKey string, pairs []string, create bool) error {
	fs := store.FileStore{}

	vi, err := loadResource(path)
	if err != nil {
		if !create {
			return err
		}
		logger.Debug().Str("path", path).Msg("building fresh version resource")
		vi = verinfo.New()
	}

	if fileVersion != "" {
		if err := vi.SetFileVersion(fileVersion); err != nil {
			return err
		}
	}
	if productVersion != "" {
		if err := vi.SetProductVersion(productVersion); err != nil {
			return err
		}
	}
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return fmt.Errorf("--string %q: expected Name=Value", pair)
		}
		vi.SetString(tableKey, name, value)
	}

	raw, err := vi.Encode()
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := fs.Save(path, raw); err != nil {
		return err
	}

	logger.Info().
		Str("path", path).
		Str("file_version", vi.FileVersion()).
		Str("product_version", vi.ProductVersion()).
		Msg("version resource updated")
	return nil
}
