package database

import "strings"

type GOTerm struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (g GOTerm) String() string {
	if g.Name == "" {
		return g.ID
	}
	return g.ID + "-" + g.Name
}

// ParseGOTerms parses entries like "GO:0000790-nuclear chromatin".
func ParseGOTerms(raw string) []GOTerm {
	terms := []GOTerm{}
	for _, entry := range splitEntries(raw) {
		id, name, _ := strings.Cut(entry, "-")
		terms = append(terms, GOTerm{ID: id, Name: name})
	}
	return terms
}

func (db *Database) GetGO(id string) ([]GOTerm, bool) {
	raw, ok := db.field(id, FieldGOTerms)
	if !ok {
		return nil, false
	}
	return ParseGOTerms(raw), true
}
