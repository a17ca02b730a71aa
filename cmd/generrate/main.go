// Command generrate injects word-form errors into tagged corpora and
// inflects single words from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/generrate/internal/app"
	"github.com/cours-de-latin/generrate/internal/config"
)

// lexiconFlags override the lexicon section of the configuration.
type lexiconFlags struct {
	tagSet     string
	dataDir    string
	dictionary string
	vocabulary string
}

func (f *lexiconFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.tagSet, "tagset", "", "tag set of the input: penn or claws")
	cmd.PersistentFlags().StringVar(&f.dataDir, "data", "", "directory holding dictionary.txt and extra_words.txt")
	cmd.PersistentFlags().StringVar(&f.dictionary, "dictionary", "", "dictionary file, one word per line")
	cmd.PersistentFlags().StringVar(&f.vocabulary, "vocabulary", "", "extra-word file, one \"token tag\" per line")
}

func (f *lexiconFlags) apply(cfg *config.LexiconConfig) {
	if f.tagSet != "" {
		cfg.TagSet = f.tagSet
	}
	if f.dataDir != "" {
		cfg.DataDir = f.dataDir
	}
	if f.dictionary != "" {
		cfg.DictionaryPath = f.dictionary
	}
	if f.vocabulary != "" {
		cfg.VocabularyPath = f.vocabulary
	}
}

func newRootCmd() *cobra.Command {
	var (
		flags lexiconFlags
		cfg   *config.Config
	)

	root := &cobra.Command{
		Use:   "generrate",
		Short: "Inject word-form substitution errors into POS-tagged sentences",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return err
			}
			flags.apply(&cfg.Lexicon)
			app.NewLogger(cfg.Log)
			return nil
		},
		SilenceUsage: true,
	}
	flags.register(root)

	current := func() *config.Config { return cfg }
	root.AddCommand(newInjectCmd(current), newInflectCmd(current))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
