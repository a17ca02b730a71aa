// Package generrate injects word-form substitution errors into
// part-of-speech tagged English sentences, producing (error, correction)
// pairs for training and evaluating grammatical error detectors.
package generrate

// Injector holds the read-only data an injection needs. It is safe for
// concurrent use.
type Injector struct {
	// tags maps grammatical categories to the tagger's tag strings.
	tags *TagSet

	// inflector applies the morphological rules under tags.
	inflector *Inflector

	// vocabulary supplies replacements for tag pairs no rule covers.
	vocabulary *Vocabulary

	// dictionary rejects replacements that are not real words. Empty
	// disables the check.
	dictionary WordSet
}

// Option configures an Injector.
type Option func(*Injector)

// WithVocabulary sets the extra words used when no rule covers a tag pair.
func WithVocabulary(v *Vocabulary) Option {
	return func(inj *Injector) { inj.vocabulary = v }
}

// WithDictionary sets the word list replacements are checked against.
func WithDictionary(d WordSet) Option {
	return func(inj *Injector) { inj.dictionary = d }
}

// New returns an Injector for sentences tagged with ts.
func New(ts *TagSet, opts ...Option) *Injector {
	inj := &Injector{tags: ts, inflector: NewInflector(ts)}
	for _, opt := range opts {
		opt(inj)
	}
	return inj
}

// TagSet returns the tag set the injector works with.
func (inj *Injector) TagSet() *TagSet { return inj.tags }

// Inflector returns the rule engine used by the injector.
func (inj *Injector) Inflector() *Inflector { return inj.inflector }

// DictionarySize returns the number of words replacements are checked
// against; zero means no check.
func (inj *Injector) DictionarySize() int { return inj.dictionary.Len() }

// VocabularySize returns the number of extra-word entries.
func (inj *Injector) VocabularySize() int { return inj.vocabulary.Len() }
