package database

import (
	"strings"
	"unicode/utf8"
)

// PTM is a post-translational modification at one residue of the sequence.
type PTM struct {
	Position string `json:"position"`
	Residue  string `json:"residue"`
	Type     string `json:"type"`
}

// ParsePTMs parses a modifications field like "T123-Phospho;K45-Acetylation".
// The first dash token is the residue letter followed by its position, the
// rest is the modification type, which may contain dashes itself.
func ParsePTMs(raw string) []PTM {
	ptms := []PTM{}
	for _, entry := range splitEntries(raw) {
		site, kind, _ := strings.Cut(entry, "-")
		ptm := PTM{Type: kind}
		if site != "" {
			_, size := utf8.DecodeRuneInString(site)
			ptm.Residue = site[:size]
			ptm.Position = site[size:]
		}
		ptms = append(ptms, ptm)
	}
	return ptms
}

func (p PTM) IsPhosphosite() bool {
	return strings.Contains(p.Type, "Phospho")
}

func (db *Database) GetPTMs(id string) ([]PTM, bool) {
	raw, ok := db.field(id, FieldModifications)
	if !ok {
		return nil, false
	}
	return ParsePTMs(raw), true
}

// GetPhosphosites returns the PTMs whose type mentions "Phospho", in
// source order.
func (db *Database) GetPhosphosites(id string) ([]PTM, bool) {
	ptms, ok := db.GetPTMs(id)
	if !ok {
		return nil, false
	}

	phosphosites := []PTM{}
	for _, ptm := range ptms {
		if ptm.IsPhosphosite() {
			phosphosites = append(phosphosites, ptm)
		}
	}
	return phosphosites, true
}
