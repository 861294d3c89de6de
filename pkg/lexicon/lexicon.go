// Package lexicon holds the static per-intent matching tables for French
// and Tunisian Arabic dialect, plus the gazetteers shared by the entity
// extractor. All regular expressions are compiled at init so a broken
// pattern fails the process at startup instead of silently scoring zero at
// request time.
package lexicon

import (
	"regexp"

	"github.com/waqt-lab/sawtak/pkg/domain/types"
)

// IntentSpec is the matching table of one intent: strong keywords score
// 2.0 each (+0.5 when the utterance starts with one), ordinary keywords
// 1.0, patterns 1.5 per match. A blocker substring anywhere in the text
// vetoes the intent before any scoring.
type IntentSpec struct {
	Intent         types.Intent
	StrongKeywords []string
	Keywords       []string
	Patterns       []*regexp.Regexp
	Blockers       []string
}

func pats(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, regexp.MustCompile(`(?i)`+expr))
	}
	return out
}

var intentTable = []IntentSpec{
	{
		Intent: types.IntentCreateReminder,
		StrongKeywords: []string{
			"rappelle-moi", "rappelle moi", "rappel", "rappeler",
			"ذكرني", "فكرني", "ما تنساش", "نذكرك", "نبي نذكر",
		},
		Keywords: []string{
			"rappelle", "souviens", "souvenir", "n'oublie pas", "oublie pas",
			"تذكير",
		},
		Patterns: pats(
			`rappelle[- ]?moi`,
			`cr[ée]+r?\s+(?:un\s+)?rappel`,
			`ajouter?\s+(?:un\s+)?rappel`,
			`mettre?\s+(?:un\s+)?rappel`,
			`(?:n.)?oublie\s+pas\s+(?:de\s+|d.)`,
			`ذكرني`,
			`فكرني`,
		),
	},
	{
		Intent: types.IntentCallContact,
		StrongKeywords: []string{
			"appelle", "appeler", "téléphone", "téléphoner",
			"نعيط", "عيط", "عيطلي", "نبي نعيط",
			"اتصل", "كلم", "نكلم",
		},
		Keywords: []string{
			"appel", "contacter", "contact", "joindre", "passer un appel",
			"نحب نعيط", "عيط لي",
		},
		Patterns: pats(
			`appelle[rz]?\s+\w+`,
			`passe[rz]?\s+(?:un\s+)?appel`,
			`(?:je\s+)?(?:veux|voudrais)\s+appeler`,
			`téléphone[rz]?\s+(?:à|au|a)\s+`,
			`(?:نحب|بغيت|نبي)\s+(?:ن)?(?:عيط|كلم)`,
			`عيط(?:لي)?\s+(?:ل|لـ)?`,
			`اتصل\s+(?:ب|بـ)?`,
		),
	},
	{
		Intent: types.IntentGetWeather,
		StrongKeywords: []string{
			"météo", "meteo", "température", "pluie",
			"طقس", "الطقس", "شنوة الطقس", "حالة الجو",
		},
		Keywords: []string{
			"nuageux", "pleuvoir", "ensoleillé", "vent",
			"الجو", "مطر", "شمس", "برد", "سخونة",
		},
		Patterns: pats(
			`quel\s+temps`,
			`(?:la\s+)?météo`,
			`est.ce\s+qu.il\s+(?:pleut|va\s+pleuvoir)`,
			`il\s+(?:fait|va\s+faire)\s+(?:chaud|froid|beau)`,
			`(?:il\s+)?(?:fait\s+)?chaud\s+(?:aujourd|dehors|demain)`,
			`(?:شنوة|كيفاش)\s+(?:الطقس|الجو|حالة)`,
			`(?:شنوة|شو)\s+الطقس`,
			`حالة\s+الجو`,
		),
	},
	{
		Intent: types.IntentGetTime,
		StrongKeywords: []string{
			"quelle heure", "l'heure", "l heure",
			"قداش الساعة", "شنوة الساعة", "الساعة كم",
		},
		Keywords: []string{
			"heure", "temps",
			"الوقت", "قداش",
		},
		Patterns: pats(
			`quelle\s+heure\s+(?:est.il|il\s+est)`,
			`il\s+est\s+quelle\s+heure`,
			`(?:dis|donne|dites)[- ]?(?:moi)?\s+l.heure`,
			`c.est\s+(?:quoi|quelle)\s+l.heure`,
			`قداش\s+الساعة`,
			`(?:شنوة|كم)\s+الساعة`,
			`الساعة\s+(?:شنو|كم|قداش)`,
			`(?:توا|الآن)\s+(?:الساعة|الوقت)`,
		),
		// A medication utterance always carries an explicit time; without
		// the veto, "heure" would pull it toward the clock intent.
		Blockers: []string{
			"médicament", "medicament", "comprimé", "cachet", "pilule",
			"doliprane", "paracétamol", "amlodipine", "metformine",
			"دواء", "دوا", "حبة",
		},
	},
	{
		Intent: types.IntentAddMedication,
		StrongKeywords: []string{
			"médicament", "medicament", "comprimé", "cachet", "pilule",
			"médicaments", "pharmaceutique",
			"doliprane", "paracétamol", "paracetamol", "aspirine",
			"amlodipine", "metformine", "oméprazole", "amoxicilline",
			"دواء", "دوا", "كاشي", "حبة دواء",
		},
		Keywords: []string{
			"médoc", "sirop", "traitement", "prescription",
			"prendre mon cachet", "prendre mon comprimé",
			"حبة",
		},
		Patterns: pats(
			`ajouter?\s+(?:le\s+|un\s+|mon\s+)?médicament`,
			`(?:nouveau|nouvel)\s+médicament`,
			`prendre?\s+(?:mon|le|un|ma)\s+(?:médicament|comprimé|cachet|pilule|médoc)`,
			`(?:je\s+)?(?:dois|faut)\s+prendre`,
			`(?:n)?ajoute[rz]?\s+(?:le\s+|un\s+)?médicament`,
			`(?:je\s+)?(?:dois|faut|il\s+faut)\s+prendre\s+(?:mon|le|un|ma)`,
			`(?:عندي|لازم|خاصني)\s+(?:ن)?(?:اخذ|ناخذ|ياخذ)\s+(?:ال)?(?:دواء|دوا|حبة)`,
			`أضف\s+(?:دواء|دوا)`,
		),
	},
	{
		Intent: types.IntentReadMessages,
		StrongKeywords: []string{
			"messages", "message",
			"رسائل", "رسالة", "مسج",
		},
		Keywords: []string{
			"lire", "lis", "courrier", "notification", "nouveau", "écrit",
			"فما", "جداد", "جديد",
		},
		Patterns: pats(
			`li[res]\s+(?:mes|les|mon)?\s*messages?`,
			`(?:j.ai|y.a|il\s+y\s+a)\s+(?:des|un)?\s*messages?`,
			`(?:mes|les|nouveaux)\s+messages?`,
			`(?:est.ce\s+que\s+)?(?:j.ai|quelqu.un)\s+(?:m.a\s+)?(?:envoyé|écrit)`,
			`(?:quelqu.un|qui)\s+(?:m.a\s+)?(?:envoyé|écrit)`,
			`(?:فما|عندي)\s+رسائل?\s+(?:جداد|جديدة)?`,
			`رسائل?\s+(?:جداد|جديدة)?`,
		),
	},
	{
		Intent: types.IntentSendMessage,
		StrongKeywords: []string{
			"envoyer", "envoie", "envoyer un message",
			"ابعث", "ارسل", "نبعث",
		},
		Keywords: []string{
			"écrire", "écris", "envoi",
			"بعث", "رسالة لـ",
		},
		Patterns: pats(
			`envoyer?\s+(?:un\s+)?message\s+(?:à|a)\s+`,
			`écrire?\s+(?:un\s+)?message\s+(?:à|a)\s+`,
			`(?:dis|dire)\s+(?:à|a)\s+\w+\s+que`,
			`envoie[rz]?\s+(?:un\s+message\s+)?(?:à|a)\s+\w+`,
			`ابعث\s+(?:مسج|رسالة)\s+(?:لـ?|ل)\s*\w+`,
			`ارسل\s+(?:رسالة|مسج)\s+(?:لـ?|ل)\s*\w+`,
		),
	},
	{
		Intent: types.IntentSetAlarm,
		StrongKeywords: []string{
			"alarme", "réveil", "réveille",
			"صحيني", "منبه", "faya9ni", "fayaqni",
		},
		Keywords: []string{
			"sonner", "sonnerie", "timer", "minuteur",
			"ريفاي",
		},
		Patterns: pats(
			`mettre?\s+(?:une?\s+)?(?:alarme|réveil)`,
			`réveille[rz]?\s*(?:moi)?`,
			`(?:une?\s+)?alarme\s+(?:à|a|pour)`,
			`sonne[rz]?\s+(?:à|a)`,
			`صحيني\s+(?:على|على الساعة)?`,
			`(?:اضبط|حط)\s+(?:المنبه|منبه)`,
			`faya9ni|fayaqni`,
		),
	},
	{
		Intent: types.IntentCheckAgenda,
		StrongKeywords: []string{
			"agenda", "planning", "programme",
			"emploi du temps", "rdv",
			"برنامج", "موعد", "برنامجي",
		},
		Keywords: []string{
			"rendez-vous", "rendez vous", "prévu", "planifié",
			"مواعيد",
		},
		Patterns: pats(
			`(?:mon|le|l.)?\s*agenda`,
			`(?:qu.est.ce\s+(?:qui\s+est|que\s+j.ai))\s+(?:de\s+)?(?:prévu|planifié)`,
			`(?:mes|les)\s+rendez.?vous`,
			`(?:le|mon|quel\s+est\s+(?:mon|le))\s+(?:programme|planning)`,
			`c.est\s+quoi\s+le\s+programme`,
			`(?:نبي|نحب|بغيت)\s+(?:نشوف|اشوف)\s+(?:البرنامج|برنامجي|مواعيدي)`,
		),
	},
	{
		Intent: types.IntentEmergencyAlert,
		StrongKeywords: []string{
			"secours", "au secours", "urgence", "urgent", "sos",
			"samu", "ambulance", "pompiers",
			"نجدة", "عاوني", "خطر", "نجده",
		},
		Keywords: []string{
			"aide", "aidez", "malaise", "tombé", "danger", "help",
			"mal", "douleur",
			"حالة طوارئ",
		},
		Patterns: pats(
			`au\s+secours`,
			`(?:j.ai|je\s+me\s+sens)\s+(?:mal|pas\s+bien)`,
			`j.ai\s+besoin\s+d.aide`,
			`appeler?\s+(?:les?\s+)?(?:urgences?|samu|ambulance|pompiers)`,
			`(?:je\s+suis|je\s+me\s+sens)\s+(?:mal|pas\s+bien)`,
			`(?:c.est|situation)\s+(?:une?\s+)?urgence?`,
			`(?:je\s+suis|j.ai)\s+tomb[eé]`,
			`عاوني.*(?:نحس|ما\s+نا)`,
			`نجدة`,
			`خطر`,
		),
	},
}

// Intents returns the intent matching tables in classification order. The
// unknown intent has no table; it is the fallback of the classifier.
func Intents() []IntentSpec {
	return intentTable
}
