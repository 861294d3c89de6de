package nlp

import (
	"math"
	"strings"

	"github.com/waqt-lab/sawtak/pkg/domain/model"
	"github.com/waqt-lab/sawtak/pkg/domain/types"
	"github.com/waqt-lab/sawtak/pkg/lexicon"
)

// Scoring weights. The confidence divisor and the emergency override
// threshold are empirically tuned values carried over unchanged; callers
// depend on the exact confidence figures.
const (
	strongKeywordScore  = 2.0
	leadingKeywordBonus = 0.5
	keywordScore        = 1.0
	patternScore        = 1.5

	confidenceDivisor  = 5.0
	emergencyThreshold = 2.0
	emergencyFloor     = 0.85
)

// Classifier scores a normalized utterance against every intent table and
// picks a winner. It is a pure function of the lexicon and its input, safe
// for concurrent use.
type Classifier struct {
	specs []lexicon.IntentSpec
}

// NewClassifier builds a classifier over the static intent tables.
func NewClassifier() *Classifier {
	return &Classifier{specs: lexicon.Intents()}
}

type candidate struct {
	intent types.Intent
	score  float64
}

// Classify returns the winning intent and its confidence for a normalized
// text. Empty text or text without any intent signal yields the unknown
// intent with confidence 0.0.
func (c *Classifier) Classify(text string) model.Classification {
	if text == "" {
		return model.Classification{Intent: types.IntentUnknown, Confidence: 0.0}
	}

	candidates := make([]candidate, 0, len(c.specs))
	var emergencyScore float64

	for _, spec := range c.specs {
		if hasBlocker(spec, text) {
			continue
		}

		score := scoreIntent(spec, text)
		if score <= 0 {
			continue
		}

		candidates = append(candidates, candidate{intent: spec.Intent, score: score})
		if spec.Intent == types.IntentEmergencyAlert {
			emergencyScore = score
		}
	}

	if len(candidates) == 0 {
		return model.Classification{Intent: types.IntentUnknown, Confidence: 0.0}
	}

	// Distress signals must never be masked by a higher-scoring but less
	// critical match.
	if emergencyScore >= emergencyThreshold {
		conf := math.Max(emergencyFloor, math.Min(1.0, emergencyScore/confidenceDivisor))
		return model.Classification{
			Intent:     types.IntentEmergencyAlert,
			Confidence: round2(conf),
		}
	}

	best := candidates[0]
	for _, cand := range candidates[1:] {
		if cand.score > best.score {
			best = cand
		}
	}

	return model.Classification{
		Intent:     best.intent,
		Confidence: round2(math.Min(1.0, best.score/confidenceDivisor)),
	}
}

func hasBlocker(spec lexicon.IntentSpec, text string) bool {
	for _, blocker := range spec.Blockers {
		if strings.Contains(text, blocker) {
			return true
		}
	}
	return false
}

func scoreIntent(spec lexicon.IntentSpec, text string) float64 {
	var score float64

	for _, kw := range spec.StrongKeywords {
		if strings.Contains(text, kw) {
			score += strongKeywordScore
			if strings.HasPrefix(text, kw) {
				score += leadingKeywordBonus
			}
		}
	}

	for _, kw := range spec.Keywords {
		if strings.Contains(text, kw) {
			score += keywordScore
		}
	}

	for _, pattern := range spec.Patterns {
		if pattern.MatchString(text) {
			score += patternScore
		}
	}

	return score
}

// round2 rounds after scoring, never before.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
