package textstats

import "strings"

// CommentKind is the result of the why-vs-what comment classification.
type CommentKind int

const (
	// KindNeither marks comments that are neither clearly rationale nor
	// clearly a restatement. Ambiguous comments land here and are not
	// counted by the why-or-what metric.
	KindNeither CommentKind = iota
	// KindWhy marks comments that explain reasoning or intent.
	KindWhy
	// KindWhat marks comments that restate what the code does.
	KindWhat
)

// whyMarkers are causal and rationale connectives. Their presence anywhere
// in a comment classifies it as a "why" comment. The list is deliberately
// a package-level variable: it is the configuration point for the
// heuristic, not a hidden constant.
var whyMarkers = []string{
	"because",
	"since",
	"so that",
	"to avoid",
	"to prevent",
	"avoid",
	"prevent",
	"workaround",
	"due to",
	"reason",
	"otherwise",
	"compatibility",
	"performance",
	"optimization",
	"optimisation",
	"security",
	"instead of",
	"rather than",
	"hack",
	"important",
	"keep this",
	"need this",
	"needed for",
	"required for",
	"decision",
	"improves",
	"too slow",
	"expensive",
}

// whatMarkers are imperative openers typical of comments that narrate the
// next statement.
var whatMarkers = []string{
	"initialize", "initialise", "loop", "get", "set", "create", "return",
	"sort", "parse", "print", "calculate", "compute", "call", "check",
	"iterate", "first", "then", "finally", "here", "this function",
	"this method", "this class",
}

// Classify assigns a comment to why, what, or neither. A why marker wins
// over a what marker; a comment matching nothing stays neither.
func Classify(comment string) CommentKind {
	lower := strings.ToLower(comment)
	for _, m := range whyMarkers {
		if strings.Contains(lower, m) {
			return KindWhy
		}
	}
	for _, m := range whatMarkers {
		if strings.HasPrefix(lower, m) {
			return KindWhat
		}
	}
	return KindNeither
}
