package feature

// Set is an unordered collection of features.
type Set map[Feature]struct{}

// NewSet builds a Set from the given features.
func NewSet(features ...Feature) Set {
	s := make(Set, len(features))
	for _, f := range features {
		s[f] = struct{}{}
	}
	return s
}

func (s Set) Add(f Feature) { s[f] = struct{}{} }

func (s Set) Has(f Feature) bool {
	_, ok := s[f]
	return ok
}

// Union adds every member of other into s.
func (s Set) Union(other Set) {
	for f := range other {
		s[f] = struct{}{}
	}
}

// BurstSet is an unordered collection of burst features.
type BurstSet map[BurstFeature]struct{}

// NewBurstSet builds a BurstSet from the given features.
func NewBurstSet(features ...BurstFeature) BurstSet {
	s := make(BurstSet, len(features))
	for _, f := range features {
		s[f] = struct{}{}
	}
	return s
}

func (s BurstSet) Add(f BurstFeature) { s[f] = struct{}{} }

func (s BurstSet) Has(f BurstFeature) bool {
	_, ok := s[f]
	return ok
}

// Union adds every member of other into s.
func (s BurstSet) Union(other BurstSet) {
	for f := range other {
		s[f] = struct{}{}
	}
}

// EncodeFeatures packs a feature set into the two fixed-width words.
// Features outside the vocabulary contribute no bits.
func EncodeFeatures(s Set) (int64, int64) {
	var word1, word2 int64
	for f := range s {
		d, ok := featureIndex[f]
		if !ok {
			continue
		}
		switch d.Word {
		case 1:
			word1 |= 1 << d.Bit
		case 2:
			word2 |= 1 << d.Bit
		}
	}
	return word1, word2
}

// DecodeFeatures is the inverse of EncodeFeatures. Bits at retired or
// unassigned positions are ignored.
func DecodeFeatures(word1, word2 int64) Set {
	s := make(Set)
	for _, d := range featureDefs {
		word := word1
		if d.Word == 2 {
			word = word2
		}
		if word&(1<<d.Bit) != 0 {
			s[d.Feature] = struct{}{}
		}
	}
	return s
}

// EncodeBurst packs a burst feature set into its single word.
func EncodeBurst(s BurstSet) int64 {
	var word int64
	for f := range s {
		if d, ok := burstIndex[f]; ok {
			word |= 1 << d.Bit
		}
	}
	return word
}

// DecodeBurst is the inverse of EncodeBurst.
func DecodeBurst(word int64) BurstSet {
	s := make(BurstSet)
	for _, d := range burstDefs {
		if word&(1<<d.Bit) != 0 {
			s[d.Feature] = struct{}{}
		}
	}
	return s
}
