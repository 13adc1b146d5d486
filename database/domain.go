package database

import (
	"strings"

	"github.com/fulldump/proteomedb/utils"
)

type Domain struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	Stop  string `json:"stop"`
}

// ParseDomains parses entries like "zf-H2C2_2-320-345". Start and stop are
// the last two dash tokens, names keep their own dashes.
func ParseDomains(raw string) []Domain {
	domains := []Domain{}
	for _, entry := range splitEntries(raw) {
		parts := strings.Split(entry, "-")
		if len(parts) < 3 {
			domains = append(domains, Domain{Name: entry})
			continue
		}
		n := len(parts)
		domains = append(domains, Domain{
			Name:  strings.Join(parts[:n-2], "-"),
			Start: strings.TrimSpace(parts[n-2]),
			Stop:  strings.TrimSpace(parts[n-1]),
		})
	}
	return domains
}

// DomainSources lists the domain databases present in the flatfile, taken
// from the "<source>_domains" columns.
func (db *Database) DomainSources() []string {
	sources := map[string]bool{}
	col := db.collection.Load()
	if col == nil {
		return []string{}
	}
	for _, header := range col.Headers {
		if source, ok := strings.CutSuffix(header, domainsSuffix); ok && source != "" {
			sources[source] = true
		}
	}
	return utils.GetKeys(sources)
}

func (db *Database) HasDomainSource(source string) bool {
	for _, s := range db.DomainSources() {
		if s == source {
			return true
		}
	}
	return false
}

// GetDomains returns the domains annotated by source (e.g. "pfam"). ok is
// false for unknown accessions and for sources without a column.
func (db *Database) GetDomains(id, source string) ([]Domain, bool) {
	raw, ok := db.field(id, source+domainsSuffix)
	if !ok {
		return nil, false
	}
	return ParseDomains(raw), true
}
