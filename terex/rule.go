package terex

import "golang.org/x/exp/slices"

// Rule is a rewrite rule: a head pattern and a replacement body.
//
// Head and body are not validated against each other. A body may reference
// variables which do not occur in the head; these stay unsubstituted symbols
// when the rule is applied.
type Rule struct {
	Head Expression
	Body Expression
}

// NewRule creates a rule from a pattern and its replacement.
func NewRule(head, body Expression) *Rule {
	return &Rule{Head: head, Body: body}
}

// String renders a rule as `head = body`.
func (r *Rule) String() string {
	return r.Head.String() + " = " + r.Body.String()
}

// DanglingVars returns the symbols of the body which no variable of the
// head will bind. Function names of the body are not considered.
func (r *Rule) DanglingVars() []string {
	binders := Vars(r.Head)
	var dangling []string
	for _, v := range Vars(r.Body) {
		if !slices.Contains(binders, v) {
			dangling = append(dangling, v)
		}
	}
	return dangling
}
