package keyword

import (
	"context"
	"fmt"
	"sort"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"

	"github.com/toxiguard/toxiguard/pkg/infra/classifier"
	"github.com/toxiguard/toxiguard/pkg/scoring"
)

// Keyword weight tiers. A matched keyword contributes its tier weight
// once, no matter how often it occurs in the text.
const (
	severeWeight = 0.7
	strongWeight = 0.5
	baseWeight   = 0.3
)

// Classifier is the deterministic fallback scorer used when no trained
// model is available. It matches a category lexicon with an Aho-Corasick
// automaton and sums tier weights, clamped to [0,1]. No randomness and
// no clock dependency: the same text always gets the same score.
type Classifier struct {
	category string
	machine  *goahocorasick.Machine
	weights  map[string]float64
	boost    func(lower string) float64
}

func NewHarassmentClassifier() (*Classifier, error) {
	return newClassifier(scoring.CategoryHarassment, harassmentLexicon(), harassmentBoost)
}

func NewMisogynyClassifier() (*Classifier, error) {
	return newClassifier(scoring.CategoryMisogyny, misogynyLexicon(), misogynyBoost)
}

func newClassifier(category string, weights map[string]float64, boost func(string) float64) (*Classifier, error) {
	patterns := make([][]rune, 0, len(weights))
	for word := range weights {
		patterns = append(patterns, []rune(word))
	}
	// the automaton requires a sorted dictionary
	sort.Slice(patterns, func(i, j int) bool {
		return string(patterns[i]) < string(patterns[j])
	})

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, fmt.Errorf("failed to build %s lexicon automaton: %w", category, err)
	}

	return &Classifier{
		category: category,
		machine:  m,
		weights:  weights,
		boost:    boost,
	}, nil
}

func (c *Classifier) Score(_ context.Context, text string) (float64, error) {
	lower := strings.ToLower(text)

	matched := make(map[string]struct{})
	score := 0.0
	for _, term := range c.machine.MultiPatternSearch([]rune(lower), false) {
		word := string(term.Word)
		if _, seen := matched[word]; seen {
			continue
		}
		matched[word] = struct{}{}
		score += c.weights[word]
	}

	if c.boost != nil {
		if boosted := c.boost(lower); boosted > score {
			score = boosted
		}
	}

	if score > 1 {
		score = 1
	}
	return score, nil
}

func (c *Classifier) Info() classifier.ModelInfo {
	return classifier.ModelInfo{
		Name:     "keyword-heuristic-v1",
		Category: c.category,
		Kind:     classifier.KindKeyword,
		Loaded:   true,
	}
}

// harassmentBoost raises the score for violent-threat phrasings that the
// per-keyword weights alone underestimate.
func harassmentBoost(lower string) float64 {
	if strings.Contains(lower, "rape") {
		return 0.85
	}
	if strings.Contains(lower, "fuck") && strings.Contains(lower, "you") {
		return 0.85
	}
	return 0
}

func misogynyBoost(lower string) float64 {
	if strings.Contains(lower, "rape") {
		for _, target := range []string{"you", "woman", "girl"} {
			if strings.Contains(lower, target) {
				return 0.9
			}
		}
	}
	return 0
}
