package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fulldump/proteomedb/bootstrap"
	"github.com/fulldump/proteomedb/configuration"
	"github.com/fulldump/proteomedb/database"
)

type Report struct {
	ID           string                       `json:"id"`
	Aliases      []string                     `json:"aliases"`
	Species      string                       `json:"species"`
	Sequence     string                       `json:"sequence"`
	PTMs         []database.PTM               `json:"ptms"`
	Phosphosites []database.PTM               `json:"phosphosites"`
	Mutations    []database.Mutation          `json:"mutations"`
	Domains      map[string][]database.Domain `json:"domains"`
	GO           []database.GOTerm            `json:"go"`
}

// query loads the flatfile and writes every annotation of c.Query to w.
func query(c *configuration.Configuration, w io.Writer) error {

	db := bootstrap.NewDatabase(c)
	err := db.Load()
	if err != nil {
		return err
	}

	report, ok := buildReport(db, c.Query)
	if !ok {
		return fmt.Errorf("accession '%s' not found", c.Query)
	}

	e := json.NewEncoder(w)
	e.SetIndent("", "    ")
	return e.Encode(report)
}

func buildReport(db *database.Database, id string) (*Report, bool) {

	aliases, ok := db.Aliases(id)
	if !ok {
		return nil, false
	}

	r := &Report{
		ID:      aliases[0],
		Aliases: aliases,
		Domains: map[string][]database.Domain{},
	}
	r.Species, _ = db.GetSpecies(id)
	r.Sequence, _ = db.GetSequence(id)
	r.PTMs, _ = db.GetPTMs(id)
	r.Phosphosites, _ = db.GetPhosphosites(id)
	r.Mutations, _ = db.GetMutations(id)
	r.GO, _ = db.GetGO(id)
	for _, source := range db.DomainSources() {
		r.Domains[source], _ = db.GetDomains(id, source)
	}

	return r, true
}
