package generrate

import "errors"

// Reasons an error cannot be injected. They are matched with errors.Is
// against the error returned by Injector.Inject.
var (
	ErrEmptySentence        = errors.New("generrate: empty sentence")
	ErrUntaggedSentence     = errors.New("generrate: sentence is not tagged")
	ErrNoCandidate          = errors.New("generrate: no word with the source tag")
	ErrNoRule               = errors.New("generrate: no rule applies to the selected word")
	ErrNoRuleAndNoFallback  = errors.New("generrate: no rule and no fallback word for the target tag")
	ErrMalformedReplacement = errors.New("generrate: malformed replacement")
	ErrDictionaryRejected   = errors.New("generrate: replacement not in dictionary")
)

var kindNames = map[error]string{
	ErrEmptySentence:        "empty_sentence",
	ErrUntaggedSentence:     "untagged_sentence",
	ErrNoCandidate:          "no_candidate",
	ErrNoRule:               "no_rule",
	ErrNoRuleAndNoFallback:  "no_rule_and_no_fallback",
	ErrMalformedReplacement: "malformed_replacement",
	ErrDictionaryRejected:   "dictionary_rejected",
}

// CannotCreateError reports that no error of the requested kind could be
// produced for a sentence. Kind is one of the Err* sentinels.
type CannotCreateError struct {
	Kind   error
	Reason string
}

func (e *CannotCreateError) Error() string {
	return e.Reason
}

func (e *CannotCreateError) Unwrap() error {
	return e.Kind
}

func cannotCreate(kind error, reason string) *CannotCreateError {
	return &CannotCreateError{Kind: kind, Reason: reason}
}

// IsCannotCreate reports whether err is, or wraps, a *CannotCreateError.
func IsCannotCreate(err error) bool {
	var c *CannotCreateError
	return errors.As(err, &c)
}

// FailureKind returns a short stable name for the sentinel err wraps, or
// "other" when it wraps none.
func FailureKind(err error) string {
	for kind, name := range kindNames {
		if errors.Is(err, kind) {
			return name
		}
	}
	return "other"
}
