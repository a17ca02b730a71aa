package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/generrate"
	"github.com/cours-de-latin/generrate/internal/app"
	"github.com/cours-de-latin/generrate/internal/config"
	"github.com/cours-de-latin/generrate/internal/corpus"
)

type pairJSON struct {
	Index     int                   `json:"index"`
	Erroneous string                `json:"erroneous"`
	Correct   string                `json:"correct"`
	Error     *generrate.Descriptor `json:"error"`
}

func newInjectCmd(cfg func() *config.Config) *cobra.Command {
	var (
		input          string
		source, target string
		workers        int
		asJSON         bool
	)

	cmd := &cobra.Command{
		Use:   "inject",
		Short: "Inject one kind of substitution error into every sentence of a tagged corpus",
		Long: `Reads one tagged sentence per line ("tok TAG tok TAG ...") and writes
the corrupted sentence, the original and the error description, tab
separated. Sentences where no error can be created are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cfg()
			logger := slog.Default()

			inj, err := app.BuildInjector(cmd.Context(), c.Lexicon, c.Redis, logger)
			if err != nil {
				return err
			}

			var sentences []*generrate.Sentence
			if input == "-" {
				sentences, err = generrate.ReadSentences(cmd.InOrStdin(), true)
			} else {
				sentences, err = generrate.LoadSentences(input, true)
			}
			if err != nil {
				return err
			}

			if workers <= 0 {
				workers = c.Corpus.Workers
			}
			d := corpus.NewDriver(inj, corpus.WithWorkers(workers), corpus.WithLogger(logger))
			res, err := d.Run(cmd.Context(), sentences, source, target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for _, p := range res.Pairs {
				if asJSON {
					if err := enc.Encode(pairJSON{
						Index:     p.Index,
						Erroneous: p.Erroneous.String(),
						Correct:   p.Correct.String(),
						Error:     p.Erroneous.Descriptor,
					}); err != nil {
						return err
					}
					continue
				}
				if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", p.Erroneous, p.Correct, p.Erroneous.ErrorDescription); err != nil {
					return err
				}
			}

			attrs := []any{
				slog.Int("total", res.Summary.Total),
				slog.Int("injected", res.Summary.Injected),
			}
			for reason, n := range res.Summary.Failed {
				attrs = append(attrs, slog.Int(reason, n))
			}
			logger.Info("done", attrs...)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "tagged corpus file, - for stdin")
	cmd.Flags().StringVar(&source, "source", "", "tag of the words to replace")
	cmd.Flags().StringVar(&target, "target", "", "tag of the replacement")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "sentences processed concurrently (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write one JSON object per pair")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
