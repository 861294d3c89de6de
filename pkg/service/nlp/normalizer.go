package nlp

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/waqt-lab/sawtak/pkg/lexicon"
)

// tokenPunct is the punctuation trimmed around a token before checking it
// against the filler list ("euh," still counts as a filler).
const tokenPunct = ",.!?;:،؟"

// Normalizer lower-cases an utterance, strips hesitation fillers and
// collapses whitespace. Filler matching is done per whitespace-split token
// rather than with \b boundaries: RE2 word boundaries are ASCII-only and
// never match around Arabic script.
type Normalizer struct {
	fillers []*regexp.Regexp
}

// NewNormalizer builds a normalizer from the built-in hesitation fillers
// plus any extra whole-token expressions from the deployment config.
func NewNormalizer(extraFillers ...string) *Normalizer {
	exprs := append(lexicon.HesitationFillers(), extraFillers...)
	fillers := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		fillers = append(fillers, regexp.MustCompile(`(?i)^(?:`+expr+`)$`))
	}
	return &Normalizer{fillers: fillers}
}

// Normalize returns the cleaned text. Empty or whitespace-only input
// yields an empty string, which short-circuits the pipeline upstream.
func (n *Normalizer) Normalize(text string) string {
	text = norm.NFC.String(text)
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}

	tokens := strings.Fields(text)
	kept := tokens[:0]
	for _, token := range tokens {
		if n.isFiller(strings.Trim(token, tokenPunct)) {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

func (n *Normalizer) isFiller(token string) bool {
	if token == "" {
		return false
	}
	for _, filler := range n.fillers {
		if filler.MatchString(token) {
			return true
		}
	}
	return false
}
