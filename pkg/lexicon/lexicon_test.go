package lexicon_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/waqt-lab/sawtak/pkg/domain/types"
	"github.com/waqt-lab/sawtak/pkg/lexicon"
)

func TestIntentTables(t *testing.T) {
	specs := lexicon.Intents()

	t.Run("covers every real intent exactly once", func(t *testing.T) {
		seen := map[types.Intent]bool{}
		for _, spec := range specs {
			gt.Value(t, spec.Intent.IsValid()).Equal(true)
			gt.Value(t, seen[spec.Intent]).Equal(false)
			seen[spec.Intent] = true
		}
		// Every intent except the unknown fallback has a table.
		gt.Number(t, len(specs)).Equal(len(types.AllIntents()) - 1)
		gt.Value(t, seen[types.IntentUnknown]).Equal(false)
	})

	t.Run("every table has signals", func(t *testing.T) {
		for _, spec := range specs {
			gt.Number(t, len(spec.StrongKeywords)).Greater(0)
			gt.Number(t, len(spec.Patterns)).Greater(0)
			for _, p := range spec.Patterns {
				gt.Value(t, p).NotNil()
			}
		}
	})

	t.Run("clock intent is blocked by medication vocabulary", func(t *testing.T) {
		for _, spec := range specs {
			if spec.Intent != types.IntentGetTime {
				continue
			}
			gt.Number(t, len(spec.Blockers)).Greater(0)
		}
	})

	t.Run("keywords are stored lowercase", func(t *testing.T) {
		for _, spec := range specs {
			for _, kw := range append(spec.StrongKeywords, spec.Keywords...) {
				gt.Value(t, kw).NotEqual("")
			}
		}
	})
}

func TestGazetteers(t *testing.T) {
	gt.Number(t, len(lexicon.KnownContacts())).Greater(0)
	gt.Number(t, len(lexicon.KnownMedications())).Greater(0)
	gt.Number(t, len(lexicon.HesitationFillers())).Greater(0)
	gt.Number(t, len(lexicon.Weekdays())).Equal(7)

	hours := lexicon.ArabicHourWords()
	for _, h := range hours {
		gt.Number(t, h).GreaterOrEqual(1)
		gt.Number(t, h).LessOrEqual(12)
	}
}
