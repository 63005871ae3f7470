package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verse-ds/verse/internal/lint"
	"github.com/verse-ds/verse/preset"
	"github.com/verse-ds/verse/twmerge"
)

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <classes>...",
		Short: "Merge utility class lists, later classes winning",
		Long: `Merge one or more class lists the way Verse components merge a caller's
class prop into their own classes: a class overrides every earlier class of
the same group under the same modifiers.

The vocabulary knows the Verse preset's scales (px-s, text-label-sm,
shadow-verse-md). Use --plain for the stock Tailwind vocabulary.`,
		Example: `  verse merge "px-2 py-1 bg-red-500" "p-3 bg-verse-blue"
  verse merge --explain "text-sm text-label-lg hover:mt-1 hover:mt-2"`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		RunE: runMerge,
	}

	cmd.Flags().Bool("explain", false, "List every dropped class and the class that overrode it")
	cmd.Flags().Bool("plain", false, "Use the Tailwind vocabulary without the Verse scales")
	cmd.Flags().Bool("json", false, "Print the merge result as JSON")
	return cmd
}

func runMerge(cmd *cobra.Command, args []string) error {
	merger := twmerge.New(twmerge.WithTheme(preset.MergeTheme()))
	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		merger = twmerge.New()
	}

	result := merger.Explain(args...)
	out := cmd.OutOrStdout()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintln(out, result.String())

	explain, _ := cmd.Flags().GetBool("explain")
	if !explain || len(result.Dropped) == 0 {
		return nil
	}

	r := lint.NewReporter(out, buildReportConfig())
	fmt.Fprintln(out)
	for _, d := range result.Dropped {
		fmt.Fprintf(out, "%s %s %s %s\n",
			r.Paint(lint.ToneError, "- "+d.Class),
			r.Paint(lint.ToneMuted, "overridden by"),
			d.By,
			r.Paint(lint.ToneMuted, fmt.Sprintf("(%s group %s)", d.Family, d.Group)))
	}
	return nil
}
