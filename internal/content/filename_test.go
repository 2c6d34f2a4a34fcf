package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilenameParserKnownCompany(t *testing.T) {
	p := NewFilenameParser([]string{"tata consultancy services", "tech mahindra", "infosys"})

	company, role := p.Parse("tata_consultancy_services_data_analyst.txt")
	assert.Equal(t, "Tata Consultancy Services", company)
	assert.Equal(t, "Data Analyst", role)

	company, role = p.Parse("tech_mahindra_devops_engineer.pdf")
	assert.Equal(t, "Tech Mahindra", company)
	assert.Equal(t, "Devops Engineer", role)
}

func TestFilenameParserUnderscoreEntries(t *testing.T) {
	// The configured list may spell multi-word companies with underscores,
	// matching the filename convention directly.
	p := NewFilenameParser([]string{"hcl_technologies", "ibm_india"})

	company, role := p.Parse("hcl_technologies_java_developer.txt")
	assert.Equal(t, "Hcl Technologies", company)
	assert.Equal(t, "Java Developer", role)
}

func TestFilenameParserLongestMatchWins(t *testing.T) {
	// "tech" alone must not steal the prefix from "tech mahindra".
	p := NewFilenameParser([]string{"tech", "tech mahindra"})

	company, role := p.Parse("tech_mahindra_tester.txt")
	assert.Equal(t, "Tech Mahindra", company)
	assert.Equal(t, "Tester", role)
}

func TestFilenameParserFallbackFirstToken(t *testing.T) {
	p := NewFilenameParser(nil)

	company, role := p.Parse("zoho_backend_developer.txt")
	assert.Equal(t, "Zoho", company)
	assert.Equal(t, "Backend Developer", role)

	company, role = p.Parse("google.txt")
	assert.Equal(t, "Google", company)
	assert.Empty(t, role)
}

func TestFilenameParserAmpersandCompany(t *testing.T) {
	p := NewFilenameParser([]string{"l&t infotech"})

	company, role := p.Parse("l&t_infotech_site_engineer.txt")
	assert.Equal(t, "L&T Infotech", company)
	assert.Equal(t, "Site Engineer", role)
}

func TestTag(t *testing.T) {
	assert.Equal(t, "infosys - software engineer", Tag("Infosys", "Software Engineer"))
	assert.Equal(t, "l&t infotech - site engineer", Tag("L&T Infotech", "Site Engineer"))
}

func TestLimitSentences(t *testing.T) {
	assert.Equal(t, "A. B. C.", LimitSentences("A. B. C. D. E.", 3))
	assert.Equal(t, "Only one sentence.", LimitSentences("Only one sentence.", 3))
	assert.Equal(t, "No trailing period.", LimitSentences("No trailing period", 3))
	assert.Empty(t, LimitSentences("   ", 3))
}
