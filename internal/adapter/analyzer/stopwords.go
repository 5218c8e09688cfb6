package analyzer

// russianStopwords is the fixed set of Russian prepositions, conjunctions,
// particles, pronouns and interjections excluded from frequency analysis.
// It is built once and only read afterwards.
var russianStopwords = newStopwordSet(
	// prepositions
	"в", "во", "на", "над", "под", "к", "ко", "от", "до", "из", "со", "о", "об", "обо",
	"у", "по", "за", "про", "с", "при", "между", "перед", "через", "сквозь",
	"без", "для", "ради", "около", "вокруг", "после", "вместо", "ввиду",
	"благодаря", "вследствие", "насчет", "вроде", "включая", "исключая",
	// conjunctions
	"и", "а", "но", "да", "или", "либо", "то", "как", "что", "чтобы", "потому",
	"так", "если", "хотя", "когда", "пока", "будто", "словно", "точно",
	// particles
	"ли", "бы", "же", "не", "ни", "ведь", "вот", "мол", "дескать",
	// pronouns
	"я", "ты", "он", "она", "оно", "мы", "вы", "они", "себя",
	"мой", "твой", "его", "её", "наш", "ваш", "их",
	"этот", "тот", "такой", "какой", "чей", "который",
	// interjections
	"ах", "ох", "эй", "увы", "вон", "ну",
)

func newStopwordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// IsStopword reports whether the lowercase word is in the Russian stop-word set.
func IsStopword(word string) bool {
	_, ok := russianStopwords[word]
	return ok
}

// StopwordCount returns the size of the stop-word set.
func StopwordCount() int {
	return len(russianStopwords)
}
