package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-mentor/internal/types"
)

func phases() []types.CareerPhase {
	return []types.CareerPhase{
		{Phase: types.PhaseBeginner, Skills: []string{"a", "b", "c"}},
		{Phase: types.PhaseIntermediate},
		{Phase: types.PhaseAdvanced},
	}
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(
		[]DomainKeywords{
			{Domain: "Alpha", Keywords: []string{"data", "python", "ai"}},
			{Domain: "Beta", Keywords: []string{"machine learning", "ai"}},
			{Domain: "Gamma", Keywords: []string{"web", "react native", "react"}},
		},
		[]types.CareerRoadmap{
			{Domain: "Alpha", Roadmap: phases()},
			{Domain: FallbackDomain, Roadmap: phases()},
		},
	)
	require.NoError(t, err)
	return c
}

func TestDefaultCatalog(t *testing.T) {
	domains := AllDomains()
	require.NotEmpty(t, domains)
	assert.Equal(t, "Data Science", domains[0])
	assert.Equal(t, "Others (Specify Below)", domains[len(domains)-1])
	assert.Contains(t, domains, FallbackDomain)

	assert.Equal(t, []string{
		"Data Science",
		"Web Development",
		"Mobile Development",
		"Cybersecurity",
		"Game Development",
		"DevOps",
	}, Templates())

	for _, d := range Templates() {
		assert.Contains(t, domains, d)
	}
}

func TestAllDomains_ReturnsFreshSlice(t *testing.T) {
	a := AllDomains()
	a[0] = "mutated"
	assert.Equal(t, "Data Science", AllDomains()[0])
}

func TestCatalog_Scores(t *testing.T) {
	c := testCatalog(t)

	scores := c.Scores("I love machine learning and ai", "python")
	assert.Equal(t, []DomainScore{
		{Domain: "Alpha", Score: 2},
		{Domain: "Beta", Score: 2},
		{Domain: "Gamma", Score: 0},
	}, scores)

	// tie keeps the earlier domain
	assert.Equal(t, "Alpha", c.BestDomain("I love machine learning and ai", "python"))

	// overlapping keywords each count
	scores = c.Scores("React Native", "")
	assert.Equal(t, 2, scores[2].Score)
	assert.Equal(t, "Gamma", c.BestDomain("React Native", ""))

	// keyword counted once however often it appears
	assert.Equal(t, 1, c.Scores("web web web", "")[2].Score)
}

func TestCatalog_BestDomain_Fallback(t *testing.T) {
	c := testCatalog(t)
	assert.Equal(t, FallbackDomain, c.BestDomain("", ""))
	assert.Equal(t, FallbackDomain, c.BestDomain("knitting", types.NoSkillsSentinel))
}

func TestCatalog_BestDomain_SubstringMatch(t *testing.T) {
	c := testCatalog(t)
	// "ai" occurs inside "certain"
	assert.Equal(t, "Alpha", c.BestDomain("certain things", ""))
	// case-insensitive on the user side
	assert.Equal(t, "Beta", c.BestDomain("MACHINE LEARNING", ""))
}

func TestCatalog_Generate_UsesInjectedCatalog(t *testing.T) {
	c := testCatalog(t)

	got := c.Generate(types.UserInput{Interests: "python data"})
	assert.Equal(t, "Alpha", got.Domain)

	// Beta has keywords but no template
	got = c.Generate(types.UserInput{Interests: "machine learning"})
	assert.Equal(t, FallbackDomain, got.Domain)
}

func TestNewCatalog_MixedCaseKeywords(t *testing.T) {
	c, err := NewCatalog(
		[]DomainKeywords{
			{Domain: "Data Science", Keywords: []string{"Python", "SQL"}},
			{Domain: FallbackDomain, Keywords: []string{"HTML"}},
		},
		[]types.CareerRoadmap{
			{Domain: "Data Science", Roadmap: phases()},
			{Domain: FallbackDomain, Roadmap: phases()},
		},
	)
	require.NoError(t, err)

	scores := c.Scores("I use python and sql", "")
	assert.Equal(t, DomainScore{Domain: "Data Science", Score: 2}, scores[0])
	assert.Equal(t, "Data Science", c.BestDomain("I use PYTHON", ""))
}

func TestNewCatalog_Errors(t *testing.T) {
	tests := []struct {
		name      string
		domains   []DomainKeywords
		templates []types.CareerRoadmap
		errMsg    string
	}{
		{
			name:      "missing fallback template",
			domains:   []DomainKeywords{{Domain: "Alpha"}},
			templates: []types.CareerRoadmap{{Domain: "Alpha", Roadmap: phases()}},
			errMsg:    "missing",
		},
		{
			name:      "duplicate domain",
			domains:   []DomainKeywords{{Domain: "Alpha"}, {Domain: "Alpha"}},
			templates: []types.CareerRoadmap{{Domain: FallbackDomain, Roadmap: phases()}},
			errMsg:    "duplicate domain",
		},
		{
			name:      "wrong phase order",
			templates: []types.CareerRoadmap{{Domain: FallbackDomain, Roadmap: phases()[:2]}},
			errMsg:    "phases",
		},
		{
			name:    "empty domain name",
			domains: []DomainKeywords{{Keywords: []string{"x"}}},
			errMsg:  "empty name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.domains, tt.templates)
			require.Error(t, err)
			var catErr *CatalogError
			require.ErrorAs(t, err, &catErr)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadCatalog_InvalidJSON(t *testing.T) {
	_, err := LoadCatalog([]byte("{"), []byte("[]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "domain keywords")

	_, err = LoadCatalog([]byte("[]"), []byte("nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roadmap templates")
}

func TestCatalog_TemplateIsCopy(t *testing.T) {
	c := testCatalog(t)
	tmpl, ok := c.Template("Alpha")
	require.True(t, ok)
	tmpl.Roadmap[0].Skills[0] = "mutated"

	again, _ := c.Template("Alpha")
	assert.Equal(t, "a", again.Roadmap[0].Skills[0])

	_, ok = c.Template("Nope")
	assert.False(t, ok)
}
