package nlp_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/waqt-lab/sawtak/pkg/domain/types"
	"github.com/waqt-lab/sawtak/pkg/service/nlp"
)

func TestProcessorEmptyInput(t *testing.T) {
	p := nlp.New()

	for _, text := range []string{"", "   ", "\t\n"} {
		got := p.Process(text)
		gt.Value(t, got.Classification.Intent).Equal(types.IntentUnknown)
		gt.Number(t, got.Classification.Confidence).Equal(0.0)
		gt.Number(t, len(got.Entities)).Equal(0)
	}
}

func TestProcessorEndToEnd(t *testing.T) {
	p := nlp.New()

	t.Run("reminder with time", func(t *testing.T) {
		got := p.Process("Euh, rappelle-moi de prendre mon médicament à 8 heures")
		gt.Value(t, got.Classification.Intent).Equal(types.IntentCreateReminder)
		gt.Value(t, got.Entities[types.SlotTime]).Equal("08:00")
		gt.Value(t, got.Entities.Has(types.SlotReminderTitle)).Equal(true)
		gt.Value(t, got.RawText).Equal("Euh, rappelle-moi de prendre mon médicament à 8 heures")
	})

	t.Run("call with gazetteer contact", func(t *testing.T) {
		got := p.Process("appelle Mohamed")
		gt.Value(t, got.Classification.Intent).Equal(types.IntentCallContact)
		gt.Value(t, got.Entities[types.SlotContact]).Equal("Mohamed")
	})

	t.Run("arabic emergency", func(t *testing.T) {
		got := p.Process("نجدة نجدة")
		gt.Value(t, got.Classification.Intent).Equal(types.IntentEmergencyAlert)
		gt.Number(t, got.Classification.Confidence).GreaterOrEqual(0.85)
	})

	t.Run("arabic time phrase", func(t *testing.T) {
		got := p.Process("صحيني الساعة سبعة")
		gt.Value(t, got.Classification.Intent).Equal(types.IntentSetAlarm)
		gt.Value(t, got.Entities[types.SlotTime]).Equal("07:00")
	})
}
