// Package rules holds the compiled-in rule catalog of the pre-commit gate.
// A rule pairs one or more pattern matchers with a severity, an optional
// OWASP category and an applicability filter; the catalog compiles every
// pattern exactly once at construction and refuses to start on the first
// invalid one.
package rules

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Foodshareclub/commitguard/internal/model"
	"github.com/gobwas/glob"
)

// Scope selects what a rule examines: whole-file content or only the added
// lines of the staged diff.
type Scope int

const (
	ScopeFile Scope = iota
	ScopeDiff
)

// Heuristic is a content matcher for the few rules a single regular
// expression cannot express (Go's RE2 engine has no lookaround). It reports
// the finding message, the occurrence count and whether the rule matched.
type Heuristic func(content string) (msg string, count int, ok bool)

// Alternative is one pattern choice within a rule. Alternatives are
// evaluated with OR semantics; each carries its own message but shares the
// rule's severity and category. Exactly one of Pattern or Heuristic is set.
type Alternative struct {
	Pattern   string
	Message   string
	Heuristic Heuristic
}

// Applicability restricts a file-scope rule to a subset of paths. A rule
// with a zero Applicability applies to every candidate file. Patterns are
// gitignore-style globs over the slash path ("*.tsx"); Contains are plain
// substring tests ("/api/"). A path matching any entry of either list is
// in scope unless it also matches an Exclude substring.
type Applicability struct {
	Patterns []string
	Contains []string
	Excludes []string
}

// Rule is a single declarative gate rule. Rules are pure data; they are
// compiled into matchers by NewCatalog and immutable afterwards.
type Rule struct {
	ID           string
	Scope        Scope
	Severity     model.Severity
	Category     string // OWASP identifier, empty when none
	Alternatives []Alternative

	// Mitigator suppresses a file-scope match when it matches anywhere in
	// the same content (e.g. a sanitizer import next to a risky call).
	Mitigator string

	// Excludes suppress a diff-scope match when the matched line contains
	// any of the substrings (e.g. "process.env" next to a key-shaped token).
	Excludes []string

	Files Applicability

	// PerOccurrence makes the rule report its match count in the summary
	// message instead of flattening to a single hit.
	PerOccurrence bool
}

type compiledAlt struct {
	re        *regexp.Regexp
	message   string
	heuristic Heuristic
}

// Compiled is a rule with all of its matchers compiled. Construction goes
// through NewCatalog only.
type Compiled struct {
	Rule

	alts      []compiledAlt
	mitigator *regexp.Regexp
	globs     []glob.Glob
}

func compile(r Rule) (*Compiled, error) {
	if strings.TrimSpace(r.ID) == "" {
		return nil, fmt.Errorf("rule without id")
	}
	if r.Severity.Rank() == 0 {
		return nil, fmt.Errorf("rule %s: invalid severity %q", r.ID, r.Severity)
	}
	if len(r.Alternatives) == 0 {
		return nil, fmt.Errorf("rule %s: no pattern alternatives", r.ID)
	}
	if r.Scope == ScopeDiff {
		if r.Mitigator != "" {
			return nil, fmt.Errorf("rule %s: diff rules take line excludes, not a mitigator", r.ID)
		}
		if len(r.Files.Patterns)+len(r.Files.Contains)+len(r.Files.Excludes) > 0 {
			return nil, fmt.Errorf("rule %s: diff rules have no path applicability", r.ID)
		}
	}

	c := &Compiled{Rule: r}
	for i, a := range r.Alternatives {
		if (a.Pattern == "") == (a.Heuristic == nil) {
			return nil, fmt.Errorf("rule %s: alternative %d needs exactly one of pattern or heuristic", r.ID, i)
		}
		if a.Heuristic != nil {
			// MatchLine evaluates regex alternatives only; a heuristic on a
			// diff rule would never run.
			if r.Scope == ScopeDiff {
				return nil, fmt.Errorf("rule %s: alternative %d: diff rules take patterns, not heuristics", r.ID, i)
			}
			c.alts = append(c.alts, compiledAlt{heuristic: a.Heuristic, message: a.Message})
			continue
		}
		re, err := regexp.Compile(a.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %s: pattern %q: %w", r.ID, a.Pattern, err)
		}
		c.alts = append(c.alts, compiledAlt{re: re, message: a.Message})
	}
	if r.Mitigator != "" {
		re, err := regexp.Compile(r.Mitigator)
		if err != nil {
			return nil, fmt.Errorf("rule %s: mitigator %q: %w", r.ID, r.Mitigator, err)
		}
		c.mitigator = re
	}
	for _, p := range r.Files.Patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("rule %s: file pattern %q: %w", r.ID, p, err)
		}
		c.globs = append(c.globs, g)
	}
	return c, nil
}

// AppliesTo reports whether a file-scope rule should run against path.
func (c *Compiled) AppliesTo(path string) bool {
	path = filepath.ToSlash(path)
	for _, sub := range c.Files.Excludes {
		if strings.Contains(path, sub) {
			return false
		}
	}
	if len(c.globs) == 0 && len(c.Files.Contains) == 0 {
		return true
	}
	for _, g := range c.globs {
		if g.Match(path) {
			return true
		}
	}
	for _, sub := range c.Files.Contains {
		if strings.Contains(path, sub) {
			return true
		}
	}
	return false
}

// MatchContent evaluates the rule against whole-file content. It returns
// the message of the first matching alternative and the occurrence count.
// A matching mitigator anywhere in the content suppresses the finding.
func (c *Compiled) MatchContent(content string) (string, int, bool) {
	for _, a := range c.alts {
		if a.heuristic != nil {
			msg, n, ok := a.heuristic(content)
			if !ok {
				continue
			}
			if c.mitigator != nil && c.mitigator.MatchString(content) {
				return "", 0, false
			}
			return msg, n, true
		}
		if !a.re.MatchString(content) {
			continue
		}
		if c.mitigator != nil && c.mitigator.MatchString(content) {
			return "", 0, false
		}
		n := 1
		if c.PerOccurrence {
			n = len(a.re.FindAllStringIndex(content, -1))
		}
		return a.message, n, true
	}
	return "", 0, false
}

// MatchLine evaluates a diff-scope rule against one added line, already
// stripped of its "+" prefix. Lines containing any exclude substring never
// match.
func (c *Compiled) MatchLine(line string) (string, bool) {
	for _, sub := range c.Excludes {
		if strings.Contains(line, sub) {
			return "", false
		}
	}
	for _, a := range c.alts {
		if a.re != nil && a.re.MatchString(line) {
			return a.message, true
		}
	}
	return "", false
}

// Catalog is the ordered, immutable collection of compiled rules.
type Catalog struct {
	file []*Compiled
	diff []*Compiled
}

// NewCatalog compiles rules in order. The first structurally invalid rule
// aborts construction; the engine must never run a partially valid catalog.
func NewCatalog(rules []Rule) (*Catalog, error) {
	c := &Catalog{}
	seen := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("duplicate rule id %s", r.ID)
		}
		seen[r.ID] = struct{}{}
		compiled, err := compile(r)
		if err != nil {
			return nil, err
		}
		switch r.Scope {
		case ScopeFile:
			c.file = append(c.file, compiled)
		case ScopeDiff:
			c.diff = append(c.diff, compiled)
		default:
			return nil, fmt.Errorf("rule %s: unknown scope", r.ID)
		}
	}
	return c, nil
}

// ForFile returns the file-scope rules applicable to path, in catalog order.
func (c *Catalog) ForFile(path string) []*Compiled {
	out := make([]*Compiled, 0, len(c.file))
	for _, r := range c.file {
		if r.AppliesTo(path) {
			out = append(out, r)
		}
	}
	return out
}

// DiffRules returns every diff-scope rule in catalog order.
func (c *Catalog) DiffRules() []*Compiled {
	return c.diff
}

// Len returns the total number of rules in the catalog.
func (c *Catalog) Len() int {
	return len(c.file) + len(c.diff)
}
