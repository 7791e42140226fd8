package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/vocab"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Convert an .xlsx or .csv word list into a vocabulary document",
	Long: `Read a spreadsheet of French/Korean word pairs and write a vocabulary
document usable with --vocab. By default column A holds the French term,
B the Korean translation, C the level number and D the level theme; the
first row is a header. Pass --level-col "" to group rows into levels of
--per-level words in file order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		out, _ := flags.GetString("out")
		format, _ := flags.GetString("format")

		ic := vocab.DefaultImportConfig()
		ic.FilePath = args[0]
		ic.SheetName, _ = flags.GetString("sheet")
		ic.TermColumn, _ = flags.GetString("term-col")
		ic.TranslationColumn, _ = flags.GetString("translation-col")
		ic.LevelColumn, _ = flags.GetString("level-col")
		ic.ThemeColumn, _ = flags.GetString("theme-col")
		ic.StartRow, _ = flags.GetInt("start-row")
		ic.WordsPerLevel, _ = flags.GetInt("per-level")

		f := vocab.Format(format)
		if format == "" {
			f = vocab.FormatFromPath(out)
		}
		if f != vocab.FormatJSON && f != vocab.FormatYAML {
			return fmt.Errorf("unknown format %q (want json or yaml)", format)
		}

		res, err := vocab.Import(ic)
		if err != nil {
			return fmt.Errorf("import %s: %w", ic.FilePath, err)
		}
		data, err := res.Vocabulary.Encode(f)
		if err != nil {
			return err
		}

		for _, e := range res.Errors {
			fmt.Fprintln(os.Stderr, "skipped", e)
		}
		logger.Info("vocabulary imported",
			"file", ic.FilePath, "processed", res.Processed, "skipped", res.Skipped, "levels", res.Vocabulary.LevelCount())

		if out == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s: %d levels, %d words (%d of %d rows skipped)\n",
			out, res.Vocabulary.LevelCount(), res.Vocabulary.WordCount(), res.Skipped, res.Processed)
		return nil
	},
}

func init() {
	d := vocab.DefaultImportConfig()
	f := importCmd.Flags()
	f.StringP("out", "o", "", "Output file (default stdout)")
	f.String("format", "", "Output format: json or yaml (default from --out extension, else json)")
	f.String("sheet", d.SheetName, "Worksheet name for .xlsx files")
	f.String("term-col", d.TermColumn, "Column holding the French term")
	f.String("translation-col", d.TranslationColumn, "Column holding the Korean translation")
	f.String("level-col", d.LevelColumn, "Column holding the level number")
	f.String("theme-col", d.ThemeColumn, "Column holding the level theme")
	f.Int("start-row", d.StartRow, "First data row, 1-based")
	f.Int("per-level", d.WordsPerLevel, "Words per level when --level-col is empty")
}
