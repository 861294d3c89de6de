package usecase

import (
	"time"

	"github.com/waqt-lab/sawtak/pkg/domain/interfaces"
	"github.com/waqt-lab/sawtak/pkg/service/nlp"
	"github.com/waqt-lab/sawtak/pkg/service/speech"
)

type UseCases struct {
	repo      interfaces.Repository
	processor *nlp.Processor
	renderer  *speech.Renderer
	now       func() time.Time

	Assistant *AssistantUseCase
}

type Option func(*UseCases)

// WithProcessor replaces the default understanding pipeline, used when
// the assistant config extends the gazetteers.
func WithProcessor(p *nlp.Processor) Option {
	return func(uc *UseCases) {
		uc.processor = p
	}
}

// WithClock fixes the time source, used by tests for the time-of-day
// greeting.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		renderer: speech.New(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.processor == nil {
		uc.processor = nlp.New()
	}

	uc.Assistant = &AssistantUseCase{
		repo:      repo,
		processor: uc.processor,
		renderer:  uc.renderer,
		now:       uc.now,
	}

	return uc
}
