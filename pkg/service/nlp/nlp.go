// Package nlp implements the understanding stages of the voice pipeline:
// text normalization, weighted lexical intent classification and
// locale-aware entity extraction for French and Tunisian Arabic dialect.
package nlp

import (
	"strings"

	"github.com/waqt-lab/sawtak/pkg/domain/model"
	"github.com/waqt-lab/sawtak/pkg/domain/types"
)

// Result is the output of the understanding stages, consumed by the action
// dispatcher.
type Result struct {
	Classification model.Classification
	Entities       model.EntityMap
	RawText        string
}

// Processor runs Normalize -> Classify -> Extract. It holds only immutable
// tables and is safe for concurrent use across requests.
type Processor struct {
	normalizer *Normalizer
	classifier *Classifier
	extractor  *Extractor
}

// Option customizes a Processor with deployment-specific lexicon entries.
type Option func(*options)

type options struct {
	contacts    []string
	medications []string
	fillers     []string
}

// WithContacts extends the contact-name gazetteer.
func WithContacts(names ...string) Option {
	return func(o *options) {
		o.contacts = append(o.contacts, names...)
	}
}

// WithMedications extends the medication-name gazetteer.
func WithMedications(names ...string) Option {
	return func(o *options) {
		o.medications = append(o.medications, names...)
	}
}

// WithFillers adds hesitation filler expressions to the normalizer.
func WithFillers(exprs ...string) Option {
	return func(o *options) {
		o.fillers = append(o.fillers, exprs...)
	}
}

// New builds a Processor. Gazetteer extensions come from the assistant
// config file; the intent tables themselves are fixed.
func New(opts ...Option) *Processor {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Processor{
		normalizer: NewNormalizer(o.fillers...),
		classifier: NewClassifier(),
		extractor:  NewExtractor(o.contacts, o.medications),
	}
}

// Process runs the full understanding pipeline on a raw utterance.
// Classification and extraction never fail: empty or signal-free input
// yields the unknown intent with confidence 0.0 and no entities.
func (p *Processor) Process(text string) Result {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return Result{
			Classification: model.Classification{Intent: types.IntentUnknown, Confidence: 0.0},
			Entities:       model.EntityMap{},
		}
	}

	normalized := p.normalizer.Normalize(raw)
	classification := p.classifier.Classify(normalized)
	entities := p.extractor.Extract(normalized, classification.Intent)

	return Result{
		Classification: classification,
		Entities:       entities,
		RawText:        raw,
	}
}
