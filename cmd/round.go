package cmd

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/abhisek/cipherplay/internal/catalog"
	"github.com/abhisek/cipherplay/internal/cipher"
)

var roundCmd = &cobra.Command{
	Use:   "round",
	Short: "Generate cipher rounds and print them",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")
		count, _ := cmd.Flags().GetInt("count")
		asJSON, _ := cmd.Flags().GetBool("json")
		if count < 1 {
			return fmt.Errorf("--count must be at least 1")
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		rng, seed, err := cipher.NewRand(cfg.Seed)
		if err != nil {
			return fmt.Errorf("seed generator: %w", err)
		}
		gen := cipher.New(rng, cipher.DefaultConfig(), nil)

		rounds := make([]*cipher.Round, 0, count)
		for range count {
			r, err := gen.GenerateRound(cipher.Level(level))
			if err != nil {
				return err
			}
			rounds = append(rounds, r)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return writeRoundsJSON(out, seed, rounds)
		}
		writeRoundsText(out, seed, rounds)
		return nil
	},
}

func init() {
	roundCmd.Flags().Int("level", int(cipher.LevelBeginner), "Difficulty level (1-3)")
	roundCmd.Flags().Int("count", 1, "Number of rounds to generate")
	roundCmd.Flags().Bool("json", false, "Print rounds as JSON")
}

type roundsJSON struct {
	Seed   uint64      `json:"seed"`
	Rounds []roundJSON `json:"rounds"`
}

type roundJSON struct {
	Level        int               `json:"level"`
	Mapping      map[string]string `json:"mapping"`
	Clues        []clueJSON        `json:"clues"`
	Question     []string          `json:"question"`
	Options      [][]string        `json:"options"`
	CorrectIndex int               `json:"correct_index"`
	Degraded     bool              `json:"degraded,omitempty"`
}

type clueJSON struct {
	Pictograms []string `json:"pictograms"`
	Glyphs     []string `json:"glyphs"`
}

func toRoundJSON(r *cipher.Round) roundJSON {
	out := roundJSON{
		Level:        int(r.Level),
		Mapping:      make(map[string]string, r.Mapping.Len()),
		Question:     pictogramIDs(r.Question),
		CorrectIndex: r.CorrectIndex,
		Degraded:     r.Degraded,
	}
	for _, p := range r.Mapping.Pool() {
		g, _ := r.Mapping.Glyph(p)
		out.Mapping[string(p)] = string(g)
	}
	for _, c := range r.Clues {
		out.Clues = append(out.Clues, clueJSON{
			Pictograms: pictogramIDs(c.Pictograms),
			Glyphs:     glyphIDs(c.Glyphs),
		})
	}
	for _, o := range r.Options {
		out.Options = append(out.Options, glyphIDs(o))
	}
	return out
}

func writeRoundsJSON(w io.Writer, seed uint64, rounds []*cipher.Round) error {
	doc := roundsJSON{Seed: seed, Rounds: make([]roundJSON, 0, len(rounds))}
	for _, r := range rounds {
		doc.Rounds = append(doc.Rounds, toRoundJSON(r))
	}
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode rounds: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeRoundsText(w io.Writer, seed uint64, rounds []*cipher.Round) {
	fmt.Fprintf(w, "seed %d\n", seed)
	for i, r := range rounds {
		fmt.Fprintf(w, "\nRound %d  (Seviye %d, %s)\n", i+1, r.Level, r.Level.Label())
		for _, c := range r.Clues {
			fmt.Fprintf(w, "  clue      %s  →  %s\n", pictogramEmoji(c.Pictograms), cipher.Option(c.Glyphs))
		}
		fmt.Fprintf(w, "  question  %s\n", pictogramEmoji(r.Question))
		for j, o := range r.Options {
			mark := ""
			if j == r.CorrectIndex {
				mark = "  ✓"
			}
			fmt.Fprintf(w, "  %d) %s%s\n", j+1, o, mark)
		}
		if r.Degraded {
			fmt.Fprintln(w, "  (fewer options than usual)")
		}
	}
}

func pictogramIDs(ps []catalog.Pictogram) []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = string(p)
	}
	return ids
}

func pictogramEmoji(ps []catalog.Pictogram) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.Emoji()
	}
	return strings.Join(parts, " ")
}

func glyphIDs(gs []catalog.Glyph) []string {
	ids := make([]string, len(gs))
	for i, g := range gs {
		ids[i] = string(g)
	}
	return ids
}
