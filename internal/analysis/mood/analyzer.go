package mood

import (
	"math"
	"strings"

	"github.com/jonreiter/govader"
)

// Scorer produces a sentiment polarity in [-1, 1] for a piece of text.
// The concrete algorithm is an implementation detail; the rest of the system
// only depends on the output range.
type Scorer interface {
	Polarity(text string) float64
}

// VaderScorer scores text with the VADER sentiment lexicon.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer builds the default lexicon-based scorer.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Polarity returns the compound VADER score for text.
func (s *VaderScorer) Polarity(text string) float64 {
	return s.analyzer.PolarityScores(text).Compound
}

// Analyzer turns raw text into a polarity and a display mood score.
type Analyzer struct {
	scorer Scorer
}

// NewAnalyzer creates an Analyzer around the given scorer. A nil scorer
// falls back to the VADER lexicon.
func NewAnalyzer(scorer Scorer) *Analyzer {
	if scorer == nil {
		scorer = NewVaderScorer()
	}
	return &Analyzer{scorer: scorer}
}

// Analyze computes the sentiment polarity of text, rounded to 3 decimal
// places, and rescales it into an integer mood score in [0, 100] via
// floor((polarity+1)*50). Empty or whitespace-only text is neutral:
// polarity 0, mood 50. Deterministic for identical input.
func (a *Analyzer) Analyze(text string) (polarity float64, score int) {
	if strings.TrimSpace(text) == "" {
		return 0, 50
	}

	polarity = a.scorer.Polarity(text)
	if polarity > 1 {
		polarity = 1
	} else if polarity < -1 {
		polarity = -1
	}
	polarity = math.Round(polarity*1000) / 1000

	score = int(math.Floor((polarity + 1) * 50))
	return polarity, score
}
