package nlp_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/waqt-lab/sawtak/pkg/service/nlp"
)

func TestNormalizer(t *testing.T) {
	n := nlp.NewNormalizer()

	t.Run("lowercases and collapses whitespace", func(t *testing.T) {
		gt.Value(t, n.Normalize("  Appelle   Mohamed  ")).Equal("appelle mohamed")
	})

	t.Run("strips french hesitations", func(t *testing.T) {
		gt.Value(t, n.Normalize("euh appelle euh, Mohamed")).Equal("appelle mohamed")
		gt.Value(t, n.Normalize("bah alors quelle heure il est")).Equal("quelle heure il est")
	})

	t.Run("strips elongated fillers", func(t *testing.T) {
		gt.Value(t, n.Normalize("mmmm appelle Fatma aaaa")).Equal("appelle fatma")
	})

	t.Run("strips arabic fillers without corrupting arabic text", func(t *testing.T) {
		gt.Value(t, n.Normalize("يعني نجدة نجدة")).Equal("نجدة نجدة")
	})

	t.Run("whole word matching only", func(t *testing.T) {
		// "benjamin" contains "ben" but is not a filler
		gt.Value(t, n.Normalize("appelle Benjamin")).Equal("appelle benjamin")
	})

	t.Run("empty input", func(t *testing.T) {
		gt.Value(t, n.Normalize("")).Equal("")
		gt.Value(t, n.Normalize("   \t ")).Equal("")
	})

	t.Run("extra fillers from config", func(t *testing.T) {
		custom := nlp.NewNormalizer("voilà")
		gt.Value(t, custom.Normalize("voilà appelle Ali")).Equal("appelle ali")
	})
}
