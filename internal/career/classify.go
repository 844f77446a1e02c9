package career

import "strings"

// DomainScore is the number of a domain's keywords found in the user's text.
type DomainScore struct {
	Domain string `json:"domain"`
	Score  int    `json:"score"`
}

// MatchText builds the lower-cased text that keywords are matched against.
func MatchText(interests, skills string) string {
	return strings.ToLower(interests + " " + skills)
}

// Scores counts, per domain and in catalog order, how many keywords occur in the text.
// Keywords match as plain substrings; each keyword counts at most once.
func (c *Catalog) Scores(interests, skills string) []DomainScore {
	text := MatchText(interests, skills)
	scores := make([]DomainScore, len(c.domains))
	for i, d := range c.domains {
		n := 0
		for _, kw := range d.Keywords {
			if strings.Contains(text, kw) {
				n++
			}
		}
		scores[i] = DomainScore{Domain: d.Domain, Score: n}
	}
	return scores
}

// BestDomain returns the strictly highest scoring domain. Ties keep the earlier
// domain and an all-zero table yields FallbackDomain.
func (c *Catalog) BestDomain(interests, skills string) string {
	return pickBest(c.Scores(interests, skills))
}

func pickBest(scores []DomainScore) string {
	best := FallbackDomain
	top := 0
	for _, s := range scores {
		if s.Score > top {
			top = s.Score
			best = s.Domain
		}
	}
	return best
}

// ResolveDomain returns the domain key used for template lookup: the trimmed
// selected domain when present, otherwise the keyword winner.
func (c *Catalog) ResolveDomain(selected, interests, skills string) string {
	if d := strings.TrimSpace(selected); d != "" {
		return d
	}
	return c.BestDomain(interests, skills)
}

// ScoreDomains scores the text against the embedded catalog.
func ScoreDomains(interests, skills string) []DomainScore {
	return defaultCatalog.Scores(interests, skills)
}

// BestDomain picks the keyword winner from the embedded catalog.
func BestDomain(interests, skills string) string {
	return defaultCatalog.BestDomain(interests, skills)
}
