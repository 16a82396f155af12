package linescan

import "github.com/vvka-141/errcollect/pkg/errcollect"

// Classifier decides whether a line starts a function whose body is skipped.
type Classifier struct {
	rules []errcollect.SkipRule
}

// NewClassifier creates a classifier over rules, evaluated in order.
func NewClassifier(rules []errcollect.SkipRule) *Classifier {
	copied := make([]errcollect.SkipRule, len(rules))
	copy(copied, rules)
	return &Classifier{rules: copied}
}

// Classify returns the first rule matching line. The boolean is false when
// the line is not a skip trigger.
func (c *Classifier) Classify(line string) (errcollect.SkipRule, bool) {
	for _, rule := range c.rules {
		if rule.Matches(line) {
			return rule, true
		}
	}
	return errcollect.SkipRule{}, false
}
