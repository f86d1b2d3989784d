package keywords

// Closed-class Czech and English words excluded from every ranking.
// Matching happens on the lowercased term.
var stopWords = map[string]bool{
	// English
	"the": true, "a": true, "an": true, "and": true, "or": true, "of": true,
	"to": true, "in": true, "on": true, "for": true, "with": true, "is": true,
	"are": true, "be": true, "as": true, "at": true, "by": true, "this": true,
	"that": true, "from": true, "it": true, "its": true, "will": true,
	"was": true, "were": true, "has": true, "have": true, "had": true,
	"but": true, "not": true, "your": true, "you": true,

	// Czech
	"i": true, "k": true, "o": true, "u": true, "s": true, "v": true,
	"z": true, "na": true, "že": true, "se": true, "je": true, "jsou": true,
	"byl": true, "byla": true, "bylo": true, "aby": true, "do": true,
	"od": true, "po": true, "pro": true, "pod": true, "nad": true,
	"který": true, "která": true, "které": true, "co": true, "toto": true,
	"tyto": true, "ten": true, "ta": true, "tím": true, "tuto": true,
	"tu": true, "jako": true, "kde": true, "kdy": true, "jak": true,
	"tak": true, "také": true, "bez": true,
}

// IsStopWord reports whether term belongs to the bilingual stop set.
func IsStopWord(term string) bool {
	return stopWords[term]
}
