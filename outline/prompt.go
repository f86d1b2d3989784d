// Package outline turns the ranked keyword lists into an article outline
// through an external text-generation service.
package outline

import (
	"fmt"
	"strings"
)

// How many aggregated keywords the prompt quotes.
const primaryKeywordLimit = 10

const systemPrompt = "You are an expert Czech SEO strategist. " +
	"Generate ONLY a detailed outline (H1, H2, optional H3) with bullet-point notes, " +
	"a meta-title (<=60 char) and meta-description (<=155 char). " +
	"Also suggest 3-5 internal links (anchor text + slug). " +
	"Do NOT write full paragraphs."

// CompetitorSummary is one competitor's contribution to the prompt.
type CompetitorSummary struct {
	URL      string
	Keywords []string
}

// Brief carries everything the generation service needs for one outline.
type Brief struct {
	Query            string
	Intent           string
	PrimaryKeywords  []string
	WeightedKeywords []string
	Competitors      []CompetitorSummary
}

// UserPrompt renders the brief into the user message: query, intent, the
// truncated primary list, the full weighted list and a numbered competitor
// snapshot.
func (b *Brief) UserPrompt() string {
	primary := b.PrimaryKeywords
	if len(primary) > primaryKeywordLimit {
		primary = primary[:primaryKeywordLimit]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Search query: %s\n", b.Query)
	fmt.Fprintf(&sb, "Search intent: %s\n", b.Intent)
	fmt.Fprintf(&sb, "Primary keywords: %s\n", strings.Join(primary, ", "))
	fmt.Fprintf(&sb, "LSI keywords: %s\n\n", strings.Join(b.WeightedKeywords, ", "))
	sb.WriteString("Competitor snapshot:\n")

	for i, c := range b.Competitors {
		kws := c.Keywords
		if len(kws) > primaryKeywordLimit {
			kws = kws[:primaryKeywordLimit]
		}
		fmt.Fprintf(&sb, "%d. %s\n   KW: %s\n", i+1, c.URL, strings.Join(kws, ", "))
	}

	return sb.String()
}
