package model

import "github.com/waqt-lab/sawtak/pkg/domain/types"

// Classification is the winning intent with its confidence in [0.0, 1.0],
// rounded to two decimals.
type Classification struct {
	Intent     types.Intent `json:"intent"`
	Confidence float64      `json:"confidence"`
}

// ActionOutcome is what an intent handler returns: the spoken response
// plus optional structured data for API clients. When a required slot is
// missing, Success is false and Data carries a "needs" key naming it.
type ActionOutcome struct {
	Success  bool           `json:"success"`
	Response string         `json:"response"`
	Action   string         `json:"action"`
	Data     map[string]any `json:"data,omitempty"`
}

// NeedsSlot reports the slot the handler is waiting for, if any.
func (o ActionOutcome) NeedsSlot() (types.SlotKey, bool) {
	if o.Data == nil {
		return "", false
	}
	needs, ok := o.Data["needs"].(string)
	if !ok || needs == "" {
		return "", false
	}
	return types.SlotKey(needs), true
}

// Speech is the voice-rendering hint attached to every reply. Rate is
// always "slow" for the target audience.
type Speech struct {
	Text string `json:"text"`
	Rate string `json:"rate"`
}

// CommandResult is the full pipeline reply for one utterance.
type CommandResult struct {
	Success       bool           `json:"success"`
	Transcription string         `json:"transcription,omitempty"`
	Intent        types.Intent   `json:"intent"`
	Confidence    float64        `json:"confidence"`
	Entities      EntityMap      `json:"entities"`
	Response      string         `json:"response_text"`
	Data          map[string]any `json:"data,omitempty"`
	Speech        Speech         `json:"speech"`
}
