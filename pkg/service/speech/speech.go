// Package speech renders assistant replies into voice-output hints.
package speech

import "github.com/waqt-lab/sawtak/pkg/domain/model"

// Renderer builds the speech payload attached to every reply. The actual
// text-to-speech runs on the client device; the server only ships the
// text and a pacing hint.
type Renderer struct{}

func New() *Renderer {
	return &Renderer{}
}

// Render wraps the response text with the fixed slow speaking rate for
// the target audience.
func (r *Renderer) Render(text string) model.Speech {
	return model.Speech{
		Text: text,
		Rate: "slow",
	}
}
