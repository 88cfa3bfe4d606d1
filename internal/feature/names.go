package feature

import (
	"errors"
	"fmt"
)

// ErrUnknownFeature is returned when a request names a feature that is
// not part of the vocabulary. Callers treat it as a client error.
var ErrUnknownFeature = errors.New("unknown feature name")

// ResolveNames maps human-facing feature labels to a Set. An unknown
// name fails the whole resolution rather than being dropped.
func ResolveNames(names []string) (Set, error) {
	s := make(Set, len(names))
	for _, name := range names {
		f, ok := featureByLabel[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
		}
		s[f] = struct{}{}
	}
	return s, nil
}

// ResolveBurstNames maps burst feature labels to a BurstSet.
func ResolveBurstNames(names []string) (BurstSet, error) {
	s := make(BurstSet, len(names))
	for _, name := range names {
		f, ok := burstByLabel[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
		}
		s[f] = struct{}{}
	}
	return s, nil
}

// Names returns the labels of every feature in s, ordered by bit
// position so output is reproducible.
func Names(s Set) []string {
	out := make([]string, 0, len(s))
	for _, d := range featureDefs {
		if _, ok := s[d.Feature]; ok {
			out = append(out, d.Label)
		}
	}
	return out
}

// BurstNames returns the labels of every burst feature in s, ordered
// by bit position.
func BurstNames(s BurstSet) []string {
	out := make([]string, 0, len(s))
	for _, d := range burstDefs {
		if _, ok := s[d.Feature]; ok {
			out = append(out, d.Label)
		}
	}
	return out
}
