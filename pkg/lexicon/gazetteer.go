package lexicon

// KnownMedications is the gazetteer of medication names checked before
// generic pattern extraction.
func KnownMedications() []string {
	return []string{
		"doliprane", "paracétamol", "paracetamol", "aspirine",
		"ibuprofène", "ibuprofen", "amlodipine", "metformine",
		"oméprazole", "amoxicilline", "losartan", "atorvastatine",
		"levothyrox", "metoprolol", "ramipril", "furosémide",
	}
}

// KnownContacts is the gazetteer of contact names checked before the
// capture templates. Deployments extend it via the assistant config file.
func KnownContacts() []string {
	return []string{
		"mohamed", "fatma", "amina", "ali", "samu", "ben said",
		"محمد", "فاطمة", "فاطمه",
	}
}

// HesitationFillers lists the filler tokens stripped by the normalizer.
// Each entry is a whole-token regular expression without anchors; the
// normalizer matches them against individual whitespace-split tokens, since
// RE2 \b word boundaries are ASCII-only and do not work for Arabic script.
func HesitationFillers() []string {
	return []string{
		"euh", "ben", "bah", "bon", "alors",
		"m{2,}", "a{3,}",
		"يعني", "ا{3,}", "امم",
	}
}

// ContactStopWords are capture candidates that can never be a contact
// name: determiners, pronouns, titles and common verbs.
func ContactStopWords() map[string]bool {
	return map[string]bool{
		"le": true, "la": true, "les": true, "un": true, "une": true,
		"des": true, "mon": true, "ma": true, "mes": true,
		"ce": true, "cette": true, "que": true, "qui": true,
		"pour": true, "dans": true, "te": true, "me": true,
		"je": true, "veux": true, "voudrais": true,
		"appeler": true, "appelle": true, "envoyer": true,
		"message": true, "dire": true, "dis": true, "s'il": true,
		"docteur": true, "dr": true,
		"لي": true, "ل": true, "لـ": true, "مع": true,
	}
}

// MedicationStopWords are capture candidates that can never be a
// medication name: time-of-day nouns, possessives and determiners.
func MedicationStopWords() map[string]bool {
	return map[string]bool{
		"matin": true, "soir": true, "jour": true, "fois": true,
		"heure": true, "mois": true, "semaine": true,
		"moi": true, "mon": true, "ma": true, "me": true,
		"le": true, "la": true, "les": true,
	}
}

// Weekdays are the French weekday names recognized by date extraction, in
// priority order.
func Weekdays() []string {
	return []string{
		"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche",
	}
}

// ArabicHourWords maps spelled-out Arabic hour words (one through twelve)
// to their numeric value.
func ArabicHourWords() map[string]int {
	return map[string]int{
		"واحدة":   1,
		"اثنتين":  2,
		"اثنين":   2,
		"ثلاثة":   3,
		"أربعة":   4,
		"خمسة":    5,
		"ستة":     6,
		"سبعة":    7,
		"ثمانية":  8,
		"تسعة":    9,
		"عشرة":    10,
		"أحد عشر": 11,
		"اثني عشر": 12,
	}
}
