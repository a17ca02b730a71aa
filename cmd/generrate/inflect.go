package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/generrate"
	"github.com/cours-de-latin/generrate/internal/config"
)

func newInflectCmd(cfg func() *config.Config) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "inflect word...",
		Short: "Convert words from one tag to another with the morphological rules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := generrate.TagSetByName(cfg().Lexicon.TagSet)
			if err != nil {
				return err
			}
			in := generrate.NewInflector(ts)
			if !in.HasRule(from, to) {
				return fmt.Errorf("no rule from %s to %s in %s", from, to, ts.Name)
			}

			out := cmd.OutOrStdout()
			for _, word := range args {
				w, ok := in.Transform(generrate.NewWord(word, from), from, to)
				if !ok {
					fmt.Fprintf(out, "%s\t-\n", word)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", word, w)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "tag of the given words")
	cmd.Flags().StringVar(&to, "to", "", "tag to convert to")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
