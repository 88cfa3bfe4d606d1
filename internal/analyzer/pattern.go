package analyzer

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/hkawai/cardfeature/internal/feature"
)

// Rule is one pattern table entry. Patterns are regular expressions
// matched against normalized text. A rule with Replace set is a rewrite
// rule: the match is substituted with ReplaceTo and the rule's features
// are accumulated. A rule without Replace only detects.
type Rule struct {
	Pattern   string
	Replace   bool
	ReplaceTo string
	Features  []feature.Feature

	re *regexp.Regexp
}

// BurstRule is the burst-vocabulary counterpart of Rule, applied to a
// card's life-burst text.
type BurstRule struct {
	Pattern   string
	Replace   bool
	ReplaceTo string
	Features  []feature.BurstFeature

	re *regexp.Regexp
}

// Rewrite builds a rewrite rule.
func Rewrite(pattern, replaceTo string, features ...feature.Feature) Rule {
	return Rule{Pattern: pattern, Replace: true, ReplaceTo: replaceTo, Features: features}
}

// Detect builds a detect-only rule.
func Detect(pattern string, features ...feature.Feature) Rule {
	return Rule{Pattern: pattern, Features: features}
}

// BurstDetect builds a detect-only burst rule.
func BurstDetect(pattern string, features ...feature.BurstFeature) BurstRule {
	return BurstRule{Pattern: pattern, Features: features}
}

// AnyNum joins a prefix and suffix literal with a count sub-pattern
// that matches the count written either as a bare digit run or as a
// parenthesized digit run, so both spellings collapse into one rule.
func AnyNum(prefix, suffix string) string {
	return prefix + `(?:\d+|\(\d+\))` + suffix
}

// PatternTable is the immutable, ordered rule catalog. Rewrite and
// detect rules are each held longest-pattern-first: when one pattern is
// a substring of another's match context the longer one must win, or a
// short rewrite corrupts the longer match mid-string. Built once at
// process start; never mutated afterwards.
type PatternTable struct {
	rewrites []Rule
	detects  []Rule
	bursts   []BurstRule
}

// NewPatternTable compiles and orders the given rules. A pattern that
// fails to compile is a configuration error: the table is unusable and
// the process must not start with it.
func NewPatternTable(rules []Rule, bursts []BurstRule) (*PatternTable, error) {
	t := &PatternTable{}
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", r.Pattern, err)
		}
		r.re = re
		if r.Replace {
			t.rewrites = append(t.rewrites, r)
		} else {
			t.detects = append(t.detects, r)
		}
	}
	for _, r := range bursts {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile burst pattern %q: %w", r.Pattern, err)
		}
		r.re = re
		t.bursts = append(t.bursts, r)
	}
	byLengthDesc := func(p []Rule) {
		sort.SliceStable(p, func(i, j int) bool {
			return len(p[i].Pattern) > len(p[j].Pattern)
		})
	}
	byLengthDesc(t.rewrites)
	byLengthDesc(t.detects)
	sort.SliceStable(t.bursts, func(i, j int) bool {
		return len(t.bursts[i].Pattern) > len(t.bursts[j].Pattern)
	})
	return t, nil
}

// RuleCount reports the number of compiled rewrite and detect rules.
func (t *PatternTable) RuleCount() int {
	return len(t.rewrites) + len(t.detects)
}
