package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"scorefind/internal/match"
	"scorefind/internal/worklist"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var csvPath string
	var showKeys bool

	cmd := &cobra.Command{
		Use:   "match [composer] [title]",
		Short: "Dry-run the catalog matcher without touching the network",
		Long: strings.TrimSpace(`
Match resolves a single (composer, title) pair, or with --csv every row of a
worklist, against the catalog and prints the outcome. Nothing is fetched;
use it to check what a processing run would do.
`),
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.loadCatalog()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if csvPath != "" {
				if len(args) != 0 {
					return fmt.Errorf("--csv and positional arguments are mutually exclusive")
				}
				entries, err := worklist.Read(csvPath)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(entries))
				matched := 0
				for _, entry := range entries {
					res := match.Match(entry.Composer, entry.Title, cat)
					row := []string{
						fmt.Sprintf("%d", entry.Row),
						entry.Composer,
						entry.Title,
					}
					if res.Matched() {
						matched++
						row = append(row, res.Work.Title)
					} else {
						row = append(row, "-")
					}
					rows = append(rows, row)
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Row", "Composer", "Title", "Matched Work"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				))
				fmt.Fprintf(out, "%d of %d rows matched\n", matched, len(entries))
				return nil
			}

			if len(args) != 2 {
				return fmt.Errorf("expected <composer> <title> or --csv <file>")
			}
			composer, title := args[0], args[1]

			if showKeys {
				for _, key := range match.CandidateKeys(composer, title) {
					fmt.Fprintln(out, key)
				}
			}

			res := match.Match(composer, title, cat)
			if !res.Matched() {
				fmt.Fprintf(out, "no match for %q by %q\n", title, composer)
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Field", "Value"},
				[][]string{
					{"Matched key", res.Key},
					{"Work", res.Work.Title},
					{"Composer", res.Work.Composer},
					{"URL", res.Work.URL},
					{"Note", res.Work.Note},
				},
				nil,
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Match every row of a worklist CSV")
	cmd.Flags().BoolVar(&showKeys, "keys", false, "Print the generated candidate keys")

	return cmd
}
