package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/verskit/pkg/store"
	"github.com/joshuapare/verskit/pkg/verinfo"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <resource>",
		Short: "Decode a version resource and report its contents",
		Long: `The info command decodes a raw VS_VERSIONINFO buffer and displays the
fixed descriptor, the translation table, and every string table.

Example:
  versctl info app.version.res
  versctl info app.version.res --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

type tableJSON struct {
	Key     string            `json:"key"`
	Strings map[string]string `json:"strings"`
}

type infoJSON struct {
	FileVersion    string             `json:"file_version"`
	ProductVersion string             `json:"product_version"`
	Language       uint16             `json:"language"`
	FileOS         string             `json:"file_os"`
	FileType       string             `json:"file_type"`
	FileFlags      []string           `json:"file_flags,omitempty"`
	SignatureOK    bool               `json:"signature_ok"`
	Translations   []verinfo.Pair     `json:"translations,omitempty"`
	Tables         []tableJSON        `json:"string_tables,omitempty"`
}

func runInfo(path string) error {
	vi, err := loadResource(path)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(buildInfo(vi))
	}

	printInfo("Version Resource:\n")
	printInfo("  File version:    %s\n", vi.FileVersion())
	printInfo("  Product version: %s\n", vi.ProductVersion())
	printInfo("  Language:        0x%04X\n", vi.Language())
	printInfo("  File OS:         %s\n", verinfo.FileOSName(vi.Fixed.FileOS))
	printInfo("  File type:       %s\n", verinfo.FileTypeName(vi.Fixed.FileType))
	for _, name := range verinfo.FileFlagNames(vi.Fixed) {
		printInfo("  Flag:            %s\n", name)
	}
	if !vi.Fixed.Valid() {
		printInfo("  Warning: fixed info signature is 0x%08X, expected VS_FIXEDFILEINFO\n",
			vi.Fixed.Signature)
	}

	if v := vi.VarInfo(); v != nil {
		for _, p := range v.Translations() {
			printInfo("  Translation:     lang 0x%04X, codepage 0x%04X\n", p.Language, p.CodePage)
		}
	}

	if s := vi.StringInfo(); s != nil {
		for _, table := range s.Tables() {
			printInfo("\n  StringTable %s:\n", table.Key())
			for _, name := range table.Names() {
				value, _ := table.Get(name)
				printInfo("    %-20s %s\n", name, value)
			}
		}
	}
	return nil
}

func buildInfo(vi *verinfo.VersionInfo) infoJSON {
	out := infoJSON{
		FileVersion:    vi.FileVersion(),
		ProductVersion: vi.ProductVersion(),
		Language:       vi.Language(),
		FileOS:         verinfo.FileOSName(vi.Fixed.FileOS),
		FileType:       verinfo.FileTypeName(vi.Fixed.FileType),
		FileFlags:      verinfo.FileFlagNames(vi.Fixed),
		SignatureOK:    vi.Fixed.Valid(),
	}
	if v := vi.VarInfo(); v != nil {
		out.Translations = v.Translations()
	}
	if s := vi.StringInfo(); s != nil {
		for _, table := range s.Tables() {
			tj := tableJSON{Key: table.Key(), Strings: make(map[string]string)}
			for _, name := range table.Names() {
				tj.Strings[name], _ = table.Get(name)
			}
			out.Tables = append(out.Tables, tj)
		}
	}
	return out
}

func loadResource(path string) (*verinfo.VersionInfo, error) {
	logger.Debug().Str("path", path).Msg("loading version resource")

	raw, err := store.FileStore{}.Load(path)
	if err != nil {
		return nil, err
	}
	vi, err := verinfo.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	logger.Debug().
		Int("bytes", len(raw)).
		Str("file_version", vi.FileVersion()).
		Msg("decoded version resource")
	return vi, nil
}
