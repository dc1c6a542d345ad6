// Package validate runs an ordered list of independent form rules and
// collects every failure. Rules never short-circuit: the user sees all
// problems at once, in the order the rules were declared.
package validate

import "strings"

// Rule is one independent predicate over live form state. Check
// returns "" on pass, or a human-readable failure message.
type Rule struct {
	Name  string
	Check func() string
}

// Outcome is the result of running every rule. An empty Failures list
// means the form is valid.
type Outcome struct {
	Failures []string
}

func (o Outcome) Valid() bool {
	return len(o.Failures) == 0
}

// Message renders the blocking text shown to the user. A single
// failure reads "Error: ..."; several are listed together.
func (o Outcome) Message() string {
	switch len(o.Failures) {
	case 0:
		return ""
	case 1:
		return "Error: " + o.Failures[0]
	default:
		return "Errors:\n - " + strings.Join(o.Failures, "\n - ")
	}
}

// RunAll evaluates every rule regardless of earlier failures.
func RunAll(rules []Rule) Outcome {
	var out Outcome
	for _, r := range rules {
		if msg := r.Check(); msg != "" {
			out.Failures = append(out.Failures, msg)
		}
	}
	return out
}
