package mood

import "testing"

type fixedScorer struct {
	value float64
}

func (s fixedScorer) Polarity(string) float64 {
	return s.value
}

func TestAnalyzeEmptyTextIsNeutral(t *testing.T) {
	// The scorer must not even be consulted for blank input.
	a := NewAnalyzer(fixedScorer{value: 0.9})

	for _, text := range []string{"", "   ", "\n\t"} {
		polarity, score := a.Analyze(text)
		if polarity != 0 {
			t.Fatalf("expected neutral polarity for %q, got %f", text, polarity)
		}
		if score != 50 {
			t.Fatalf("expected mood 50 for %q, got %d", text, score)
		}
	}
}

func TestAnalyzeScoreMapping(t *testing.T) {
	cases := []struct {
		polarity float64
		want     int
	}{
		{-1, 0},
		{-0.5, 25},
		{-0.013, 49},
		{0, 50},
		{0.013, 50},
		{0.5, 75},
		{1, 100},
	}

	for _, tc := range cases {
		a := NewAnalyzer(fixedScorer{value: tc.polarity})
		_, score := a.Analyze("some text")
		if score != tc.want {
			t.Fatalf("polarity %f: expected mood %d, got %d", tc.polarity, tc.want, score)
		}
	}
}

func TestAnalyzeScoreMonotonic(t *testing.T) {
	prev := -1
	for p := -1.0; p <= 1.0; p += 0.05 {
		a := NewAnalyzer(fixedScorer{value: p})
		_, score := a.Analyze("some text")
		if score < prev {
			t.Fatalf("mood decreased at polarity %f: %d < %d", p, score, prev)
		}
		if score < 0 || score > 100 {
			t.Fatalf("mood out of range at polarity %f: %d", p, score)
		}
		prev = score
	}
}

func TestAnalyzeRoundsPolarity(t *testing.T) {
	a := NewAnalyzer(fixedScorer{value: 0.12345})
	polarity, _ := a.Analyze("some text")
	if polarity != 0.123 {
		t.Fatalf("expected polarity rounded to 0.123, got %f", polarity)
	}
}

func TestAnalyzeClampsScorerOutput(t *testing.T) {
	a := NewAnalyzer(fixedScorer{value: 1.5})
	polarity, score := a.Analyze("some text")
	if polarity != 1 {
		t.Fatalf("expected polarity clamped to 1, got %f", polarity)
	}
	if score != 100 {
		t.Fatalf("expected mood 100, got %d", score)
	}
}

func TestVaderScorerDirection(t *testing.T) {
	a := NewAnalyzer(nil)

	polarity, score := a.Analyze("I feel hopeless and sad today")
	if polarity >= 0 {
		t.Fatalf("expected negative polarity for hopeless text, got %f", polarity)
	}
	if score >= 50 {
		t.Fatalf("expected mood below 50 for hopeless text, got %d", score)
	}

	polarity, score = a.Analyze("I love this wonderful day")
	if polarity <= 0 {
		t.Fatalf("expected positive polarity for happy text, got %f", polarity)
	}
	if score <= 50 {
		t.Fatalf("expected mood above 50 for happy text, got %d", score)
	}
}
