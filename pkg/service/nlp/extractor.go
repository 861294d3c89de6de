package nlp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/waqt-lab/sawtak/pkg/domain/model"
	"github.com/waqt-lab/sawtak/pkg/domain/types"
	"github.com/waqt-lab/sawtak/pkg/lexicon"
)

// maxTitleLen caps extracted reminder titles.
const maxTitleLen = 120

// Time extraction patterns, tried in order. The first in-range match wins;
// an out-of-range hour or minute is rejected, not clamped, and the next
// form is tried.
var (
	timeNumericRe = regexp.MustCompile(`(?i)(\d{1,2})\s*[h:]\s*(\d{0,2})`)
	timeSpelledRe = regexp.MustCompile(`(?i)(\d{1,2})\s+heures?(?:\s+(?:et\s+)?(\d{1,2}))?`)
	timeArabicRe  = regexp.MustCompile(`الساعة\s+(\d{1,2})`)
)

// Date cue patterns, in resolution priority order (not text order).
var (
	dateTodayRe         = regexp.MustCompile(`aujourd.hui|اليوم|توا`)
	dateTomorrowRe      = regexp.MustCompile(`demain|غدوة|الغد`)
	dateAfterTomorrowRe = regexp.MustCompile(`après.demain|بعد\s+غد`)
	dateMorningRe       = regexp.MustCompile(`ce\s+matin|الصباح`)
	dateEveningRe       = regexp.MustCompile(`ce\s+soir|الليلة|الليلا`)
	dateAfternoonRe     = regexp.MustCompile(`après.midi|العصر|العصري`)
)

// Contact capture templates: the token following a verb of calling,
// messaging or addressing. French templates first, then Arabic.
var contactTemplates = compileAll(
	`appelle[rz]?\s+(?:le\s+|la\s+|l.)?(`+nameToken+`)`,
	`(?:envoie[rz]?|écrire?)\s+(?:un\s+message\s+)?(?:à|a)\s+(`+nameToken+`)`,
	`(?:dis|dire)\s+(?:à|a)\s+(`+nameToken+`)`,
	`contacter?\s+(`+nameToken+`)`,
	`joindre?\s+(`+nameToken+`)`,
	`message\s+(?:à|a)\s+(`+nameToken+`)`,
	`(?:عيط|عيطلي|اتصل)\s+(?:ل|لـ|ب|بـ)?\s*(`+nameToken+`)`,
	`ابعث\s+(?:مسج|رسالة)\s+(?:ل|لـ)?\s*(`+nameToken+`)`,
	`ارسل\s+(?:رسالة|مسج)\s+(?:ل|لـ)?\s*(`+nameToken+`)`,
	`(?:نعيط|نكلم)\s+(?:ل|لـ)?\s*(`+nameToken+`)`,
)

// Message body templates: the remainder after a say/tell/write cue,
// optionally following "que".
var messageTemplates = compileAll(
	`(?:dis|dire)\s+(?:à|a)\s+`+nameToken+`\s+(?:que\s+)?(.*)`,
	`envoie[rz]?\s+(?:un\s+)?message\s+(?:à|a)\s+`+nameToken+`\s*[,:]\s*(.*)`,
	`(?:le\s+message|message)\s*[,:]\s*(.*)`,
	`(?:dit|dire)\s+(?:à|a)\s+`+nameToken+`\s+(.*)`,
	`(?:قولو|قولها|قوله)\s+(.*)`,
)

// Medication capture templates, used when the gazetteer has no hit.
var medicationTemplates = compileAll(
	`médicament\s+(`+nameToken+`)`,
	`(?:le|du|un)\s+(`+nameToken+`)`,
	`(?:comprimé|cachet|pilule)\s+(?:de\s+|d.)?(`+nameToken+`)`,
)

// Reminder title templates: strip the leading cue phrase and any trailing
// explicit time clause.
var titleTemplates = compileAll(
	`rappelle[- ]?moi\s+(?:de\s+|d.)?(.+?)(?:\s+(?:à|a)\s+\d|$)`,
	`(?:n.)?oublie\s+pas\s+(?:de\s+|d.)?(.+?)(?:\s+(?:à|a)\s+\d|$)`,
	`rappel\s+(?:pour\s+|de\s+)?(.+?)(?:\s+(?:à|a)\s+\d|$)`,
	`(?:cr[ée]+r?|ajouter?)\s+(?:un\s+)?rappel\s+(?:pour\s+|de\s+)?(.+?)(?:\s+(?:à|a)\s+\d|$)`,
	`ذكرني\s+(.*)`,
	`فكرني\s+(.*)`,
)

// titleFallbackRe captures everything after a bare "rappelle-moi" when no
// template matched, with no trailing-time stripping.
var titleFallbackRe = regexp.MustCompile(`(?i)rappelle[- ]?moi\s+(.*)`)

// nameToken matches one word of a name in Latin or Arabic script. RE2's
// \w is ASCII-only, so accented French names and Arabic names need an
// explicit Unicode letter class.
const nameToken = `[\p{L}\p{N}_][\p{L}\p{N}_]+`

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, regexp.MustCompile(`(?i)`+expr))
	}
	return out
}

// Extractor pulls structured slots out of a normalized utterance. Time and
// date run for every intent; the remaining extractors run only for the
// intents that consume them.
type Extractor struct {
	contacts    []string
	medications []string
}

// NewExtractor builds an extractor over the built-in gazetteers plus any
// deployment-specific additions.
func NewExtractor(extraContacts, extraMedications []string) *Extractor {
	return &Extractor{
		contacts:    append(lexicon.KnownContacts(), extraContacts...),
		medications: append(lexicon.KnownMedications(), extraMedications...),
	}
}

// Extract returns the slot map for the given normalized text and winning
// intent. Keys are present only when extraction succeeded.
func (e *Extractor) Extract(text string, intent types.Intent) model.EntityMap {
	entities := model.EntityMap{}

	if v := extractTime(text); v != "" {
		entities[types.SlotTime] = v
	}
	if v := extractDate(text); v != "" {
		entities[types.SlotDate] = v
	}

	switch intent {
	case types.IntentCallContact:
		if v := e.extractContact(text); v != "" {
			entities[types.SlotContact] = v
		}
	case types.IntentSendMessage:
		if v := e.extractContact(text); v != "" {
			entities[types.SlotContact] = v
		}
		if v := extractMessageBody(text); v != "" {
			entities[types.SlotMessageBody] = v
		}
	case types.IntentAddMedication:
		if v := e.extractMedication(text); v != "" {
			entities[types.SlotMedication] = v
		}
	case types.IntentCreateReminder:
		if v := extractReminderTitle(text); v != "" {
			entities[types.SlotReminderTitle] = v
		}
	}

	return entities
}

func extractTime(text string) string {
	// 8h, 8h30, 8:30, 08h00
	if m := timeNumericRe.FindStringSubmatch(text); m != nil {
		if v := formatClock(m[1], m[2]); v != "" {
			return v
		}
	}

	// "8 heures 30" / "8 heures et 30" / "8 heures"
	if m := timeSpelledRe.FindStringSubmatch(text); m != nil {
		if v := formatClock(m[1], m[2]); v != "" {
			return v
		}
	}

	// "الساعة 7"
	if m := timeArabicRe.FindStringSubmatch(text); m != nil {
		if h, err := strconv.Atoi(m[1]); err == nil && h >= 0 && h <= 23 {
			return fmt.Sprintf("%02d:00", h)
		}
	}

	// "الساعة سبعة" with a spelled-out hour word
	for word, hour := range lexicon.ArabicHourWords() {
		if strings.Contains(text, "الساعة "+word) || strings.Contains(text, "على الساعة "+word) {
			return fmt.Sprintf("%02d:00", hour)
		}
	}

	return ""
}

// formatClock validates and zero-pads an hour/minute pair. The minute part
// may be empty and defaults to zero.
func formatClock(hourStr, minuteStr string) string {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return ""
	}
	minute := 0
	if minuteStr != "" {
		minute, err = strconv.Atoi(minuteStr)
		if err != nil {
			return ""
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func extractDate(text string) string {
	if dateTodayRe.MatchString(text) {
		return "aujourd'hui"
	}
	if dateTomorrowRe.MatchString(text) {
		return "demain"
	}
	if dateAfterTomorrowRe.MatchString(text) {
		return "après-demain"
	}

	for _, day := range lexicon.Weekdays() {
		if strings.Contains(text, day) {
			return day
		}
	}

	if strings.Contains(text, "cette semaine") || strings.Contains(text, "هذا الأسبوع") {
		return "cette semaine"
	}
	if dateMorningRe.MatchString(text) {
		return "ce matin"
	}
	if dateEveningRe.MatchString(text) {
		return "ce soir"
	}
	if dateAfternoonRe.MatchString(text) {
		return "cet après-midi"
	}

	return ""
}

func (e *Extractor) extractContact(text string) string {
	lower := strings.ToLower(text)
	for _, known := range e.contacts {
		if strings.Contains(lower, known) {
			return capitalize(known)
		}
	}

	stopWords := lexicon.ContactStopWords()
	for _, template := range contactTemplates {
		m := template.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if stopWords[strings.ToLower(name)] || utf8.RuneCountInString(name) < 2 {
			continue
		}
		return capitalize(name)
	}

	return ""
}

func extractMessageBody(text string) string {
	for _, template := range messageTemplates {
		m := template.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		content := strings.TrimSpace(m[1])
		if utf8.RuneCountInString(content) > 1 {
			return content
		}
	}
	return ""
}

func (e *Extractor) extractMedication(text string) string {
	lower := strings.ToLower(text)
	for _, known := range e.medications {
		if strings.Contains(lower, known) {
			return capitalize(known)
		}
	}

	stopWords := lexicon.MedicationStopWords()
	for _, template := range medicationTemplates {
		m := template.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if stopWords[strings.ToLower(candidate)] || utf8.RuneCountInString(candidate) <= 2 {
			continue
		}
		return capitalize(candidate)
	}

	return ""
}

func extractReminderTitle(text string) string {
	for _, template := range titleTemplates {
		m := template.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(m[1]), ".,!?"))
		if utf8.RuneCountInString(title) > 2 {
			return truncateRunes(title, maxTitleLen)
		}
	}

	if m := titleFallbackRe.FindStringSubmatch(text); m != nil {
		return truncateRunes(strings.TrimSpace(m[1]), maxTitleLen)
	}

	return ""
}

// capitalize upper-cases the first rune and lower-cases the rest. Arabic
// script has no case, so Arabic names pass through unchanged.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
