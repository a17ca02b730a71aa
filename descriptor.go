package generrate

import "fmt"

// Descriptor describes an injected substitution. Position is 1-based.
type Descriptor struct {
	Kind      string `json:"kind"`
	Old       string `json:"old"`
	New       string `json:"new"`
	Position  int    `json:"position"`
	SourceTag string `json:"source_tag"`
	TargetTag string `json:"target_tag"`
}

// ErrorKind names the error produced by substituting a word tagged source
// with one tagged target.
func ErrorKind(source, target string) string {
	return "SubstWrongForm" + source + target + "Error"
}

// String renders the descriptor in annotation form:
//
//	errortype="SubstWrongFormNNSNNError" details="dogs/dog at 3"
func (d *Descriptor) String() string {
	return fmt.Sprintf("errortype=%q details=\"%s/%s at %d\"", d.Kind, d.Old, d.New, d.Position)
}
