package analyzer

import (
	"runtime"
	"sync"

	"github.com/hkawai/cardfeature/internal/feature"
)

// Result is the outcome of analyzing one text: the rewritten text and
// the union of all detected feature tags.
type Result struct {
	ProcessedText string
	Tags          feature.Set
}

// BurstResult is the outcome of analyzing one life-burst text.
type BurstResult struct {
	ProcessedText string
	Tags          feature.BurstSet
}

// Analyzer applies a PatternTable to raw text. It is stateless per
// call: the table is immutable, so one Analyzer is safe for any number
// of concurrent callers.
type Analyzer struct {
	table *PatternTable
}

func New(table *PatternTable) *Analyzer {
	return &Analyzer{table: table}
}

// Analyze normalizes raw, applies every rewrite rule in priority order
// (each rule re-scans the current text, so later rules see earlier
// rewrites), then applies the detect rules against the rewritten text.
// Pure: identical input always yields identical output.
func (a *Analyzer) Analyze(raw string) Result {
	text := Normalize(raw)
	tags := make(feature.Set)

	for _, r := range a.table.rewrites {
		if !r.re.MatchString(text) {
			continue
		}
		for _, f := range r.Features {
			tags.Add(f)
		}
		text = r.re.ReplaceAllString(text, r.ReplaceTo)
	}
	for _, r := range a.table.detects {
		if !r.re.MatchString(text) {
			continue
		}
		for _, f := range r.Features {
			tags.Add(f)
		}
	}
	return Result{ProcessedText: text, Tags: tags}
}

// AnalyzeBurst runs the burst rule list over a card's life-burst text.
func (a *Analyzer) AnalyzeBurst(raw string) BurstResult {
	text := Normalize(raw)
	tags := make(feature.BurstSet)

	for _, r := range a.table.bursts {
		if !r.re.MatchString(text) {
			continue
		}
		for _, f := range r.Features {
			tags.Add(f)
		}
		if r.Replace {
			text = r.re.ReplaceAllString(text, r.ReplaceTo)
		}
	}
	return BurstResult{ProcessedText: text, Tags: tags}
}

// AnalyzeBatch analyzes independent texts concurrently. Items share no
// mutable state, so the only coordination is the bounded worker pool;
// results are positioned by input index and are bit-identical to
// calling Analyze sequentially.
func (a *Analyzer) AnalyzeBatch(texts []string) []Result {
	results := make([]Result, len(texts))
	workers := runtime.NumCPU()
	if workers > len(texts) {
		workers = len(texts)
	}
	if workers < 1 {
		return results
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range texts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = a.Analyze(texts[i])
		}(i)
	}
	wg.Wait()
	return results
}
