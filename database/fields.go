package database

import "strings"

// Flatfile column names read by the accessors.
const (
	FieldModifications = "modifications"
	FieldMutations     = "mutations"
	FieldGOTerms       = "GO_terms"
	FieldSequence      = "sequence"
	FieldSpecies       = "species"

	domainsSuffix = "_domains"
)

// splitEntries splits a semicolon separated field into trimmed, non empty
// entries. An empty field yields an empty, non nil slice.
func splitEntries(raw string) []string {
	entries := []string{}
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
