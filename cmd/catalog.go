package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/cipherplay/internal/catalog"
	"github.com/abhisek/cipherplay/internal/cipher"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List pictograms, glyphs and the level table",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()

		fmt.Fprintf(w, "%-8s  %-5s  %s\n", "ID", "Emoji", "Name")
		fmt.Fprintln(w, strings.Repeat("─", 30))
		for _, p := range catalog.AllPictograms() {
			fmt.Fprintf(w, "%-8s  %-5s  %s\n", p, p.Emoji(), p.DisplayName())
		}

		fmt.Fprintf(w, "\n%-8s  %-5s  %s\n", "ID", "Char", "Color")
		fmt.Fprintln(w, strings.Repeat("─", 30))
		for _, g := range catalog.AllGlyphs() {
			fmt.Fprintf(w, "%-8s  %-5s  %s\n", g, g.Char(), g.Color())
		}

		levels := cipher.DefaultLevels()
		keys := make([]cipher.Level, 0, len(levels))
		for l := range levels {
			keys = append(keys, l)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

		fmt.Fprintf(w, "\n%-6s  %-10s  %4s  %5s  %8s\n", "Level", "Label", "Pool", "Clues", "Question")
		fmt.Fprintln(w, strings.Repeat("─", 40))
		for _, l := range keys {
			lc := levels[l]
			fmt.Fprintf(w, "%-6d  %-10s  %4d  %5d  %8d\n", l, l.Label(), lc.PoolSize, lc.ClueRows, lc.QuestionLen)
		}
	},
}
