package search

import "strings"

// Intent is the heuristically detected search intent of a query.
type Intent string

const (
	IntentInformational Intent = "informational"
	IntentTransactional Intent = "transactional"
)

// Purchase-oriented trigger words (Czech + English).
var transactionalWords = []string{
	"koupit", "cena", "objednat", "recenze", "srovnání", "discount",
}

// Interrogative prefixes marking informational queries.
var questionPrefixes = []string{
	"jak", "co", "proč", "kdy", "kde", "who", "how", "what", "why",
}

// DetectIntent classifies a query as transactional or informational.
// Transactional trigger words win over interrogative prefixes; everything
// else defaults to informational.
func DetectIntent(query string) Intent {
	q := strings.ToLower(query)

	for _, w := range transactionalWords {
		if strings.Contains(q, w) {
			return IntentTransactional
		}
	}
	for _, p := range questionPrefixes {
		if strings.HasPrefix(q, p) {
			return IntentInformational
		}
	}
	return IntentInformational
}
