package speech_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/waqt-lab/sawtak/pkg/service/speech"
)

func TestRender(t *testing.T) {
	r := speech.New()

	got := r.Render("Bonjour !")
	gt.Value(t, got.Text).Equal("Bonjour !")
	gt.Value(t, got.Rate).Equal("slow")
}
