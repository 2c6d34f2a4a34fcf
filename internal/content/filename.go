package content

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// FilenameParser splits source filenames of the form <company>_<role>.txt
// into display names. Company names may themselves contain underscores, so
// the parser first tries a longest-match against a known-company list
// before falling back to "first token is the company".
type FilenameParser struct {
	known []string // lowercase, underscore-joined, sorted longest first
}

// NewFilenameParser accepts known-company names in either spelling:
// "tech mahindra" or "tech_mahindra". Both normalize to the underscore
// form filenames use.
func NewFilenameParser(knownCompanies []string) *FilenameParser {
	known := make([]string, len(knownCompanies))
	for i, c := range knownCompanies {
		known[i] = strings.ReplaceAll(strings.ToLower(c), " ", "_")
	}
	sort.Slice(known, func(i, j int) bool { return len(known[i]) > len(known[j]) })
	return &FilenameParser{known: known}
}

// Parse returns title-cased company and role display names. The role is
// empty when the filename has no underscore past the company.
func (p *FilenameParser) Parse(filename string) (company, role string) {
	base := strings.ToLower(strings.TrimSuffix(filename, filepath.Ext(filename)))

	for _, comp := range p.known {
		if strings.HasPrefix(base, comp+"_") {
			return titleCase(strings.ReplaceAll(comp, "_", " ")),
				titleCase(strings.ReplaceAll(base[len(comp)+1:], "_", " "))
		}
	}

	parts := strings.SplitN(base, "_", 2)
	company = titleCase(parts[0])
	if len(parts) > 1 {
		role = titleCase(strings.ReplaceAll(parts[1], "_", " "))
	}
	return company, role
}

// Tag builds the normalized "<company> - <role>" lookup key.
func Tag(company, role string) string {
	return strings.ToLower(company) + " - " + strings.ToLower(role)
}

// titleCase uppercases every letter that follows a non-letter, so
// "l&t infotech" becomes "L&T Infotech".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		if isLetter && !prevLetter {
			r = unicode.ToUpper(r)
		}
		prevLetter = isLetter
		b.WriteRune(r)
	}
	return b.String()
}
