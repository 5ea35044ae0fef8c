package highlight

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultMatchTimeout bounds a single regular expression match.
const DefaultMatchTimeout = 200 * time.Millisecond

var (
	ErrNoName       = errors.New("highlight: profile has no name")
	ErrNoRules      = errors.New("highlight: profile has no rules")
	ErrUnknownClass = errors.New("highlight: unknown token class")
)

// Rule assigns Class to every accepted match of Pattern.
//
// Pattern uses regexp2 syntax and is compiled in multiline mode. When the
// pattern contains named groups whose names are token classes, the first group
// that participated in a match decides the class instead. This lets one rule
// scan for comments and strings together so that neither can start inside the
// other.
type Rule struct {
	Pattern string
	Class   Class
}

// Profile is a named, ordered set of rules.
type Profile struct {
	Name    string
	Aliases []string
	Rules   []Rule
}

type compiledRule struct {
	re     *regexp2.Regexp
	class  Class
	groups []string // named groups that are token classes
}

type compiledProfile struct {
	Profile
	rules []compiledRule
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func compileProfile(p Profile, timeout time.Duration) (*compiledProfile, error) {
	p.Name = normalizeName(p.Name)
	if p.Name == "" {
		return nil, ErrNoName
	}
	if len(p.Rules) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRules, p.Name)
	}

	cp := &compiledProfile{Profile: p}
	for i, r := range p.Rules {
		if !r.Class.Valid() {
			return nil, fmt.Errorf("%w: %s rule %d: %q", ErrUnknownClass, p.Name, i, r.Class)
		}
		re, err := regexp2.Compile(r.Pattern, regexp2.Multiline)
		if err != nil {
			return nil, fmt.Errorf("compile %s rule %d: %w", p.Name, i, err)
		}
		re.MatchTimeout = timeout

		var groups []string
		for _, name := range re.GetGroupNames() {
			if Class(name).Valid() {
				groups = append(groups, name)
			}
		}
		cp.rules = append(cp.rules, compiledRule{re: re, class: r.Class, groups: groups})
	}
	return cp, nil
}

// classOf returns the class for an accepted match.
func (r compiledRule) classOf(m *regexp2.Match) Class {
	for _, name := range r.groups {
		if g := m.GroupByName(name); g != nil && len(g.Captures) > 0 {
			return Class(name)
		}
	}
	return r.class
}
