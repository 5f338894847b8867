package college

import "strings"

// Term is the academic season a course offering runs in.
type Term string

const (
	TermAutumn Term = "AUTUMN"
	TermWinter Term = "WINTER"
	TermSpring Term = "SPRING"
	TermSummer Term = "SUMMER"
)

var terms = []Term{TermAutumn, TermWinter, TermSpring, TermSummer}

// ParseTerm accepts any casing and surrounding whitespace.
func ParseTerm(raw string) (Term, bool) {
	t := Term(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range terms {
		if t == known {
			return t, true
		}
	}
	return "", false
}

func (t Term) Valid() bool {
	for _, known := range terms {
		if t == known {
			return true
		}
	}
	return false
}

func (t Term) String() string { return string(t) }
