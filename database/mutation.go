package database

import "strings"

type Mutation struct {
	Position   string `json:"position"`
	Original   string `json:"original"`
	New        string `json:"new"`
	Annotation string `json:"annotation,omitempty"`
}

// ParseMutation reads one mutation entry. The first character is the
// original residue, the last one the new residue and everything in between
// is kept verbatim as the position, so "A45T (x)" gives position "45T (x"
// and new residue ")".
//
// An entry "<code>:<annotation>" where code has no whitespace, like
// "S12L:VAR_019971 (In dbSNP:rs3741665.)", applies the slicing to code only.
func ParseMutation(entry string) Mutation {

	code, annotation := entry, ""
	if i := strings.Index(entry, ":"); i > 0 && !strings.ContainsAny(entry[:i], " \t") {
		code = entry[:i]
		annotation = strings.TrimSpace(entry[i+1:])
	}

	r := []rune(code)
	switch len(r) {
	case 0:
		return Mutation{Annotation: annotation}
	case 1:
		return Mutation{Original: code, New: code, Annotation: annotation}
	}

	return Mutation{
		Position:   string(r[1 : len(r)-1]),
		Original:   string(r[0]),
		New:        string(r[len(r)-1]),
		Annotation: annotation,
	}
}

func ParseMutations(raw string) []Mutation {
	mutations := []Mutation{}
	for _, entry := range splitEntries(raw) {
		mutations = append(mutations, ParseMutation(entry))
	}
	return mutations
}

func (db *Database) GetMutations(id string) ([]Mutation, bool) {
	raw, ok := db.field(id, FieldMutations)
	if !ok {
		return nil, false
	}
	return ParseMutations(raw), true
}
