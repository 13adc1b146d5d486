package service

import (
	"fmt"

	"github.com/fulldump/proteomedb/collection"
	"github.com/fulldump/proteomedb/database"
)

type Service struct {
	db *database.Database
}

func NewService(db *database.Database) *Service {
	return &Service{
		db: db,
	}
}

type Status struct {
	Status        string   `json:"status"`
	LoadID        string   `json:"load_id"`
	Proteins      int      `json:"proteins"`
	Skipped       int      `json:"skipped"`
	DomainSources []string `json:"domain_sources"`
}

type Protein struct {
	ID      string            `json:"id"`
	Aliases []string          `json:"aliases"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (s *Service) GetStatus() *Status {
	return &Status{
		Status:        s.db.GetStatus(),
		LoadID:        s.db.LoadID(),
		Proteins:      s.db.Len(),
		Skipped:       s.db.Skipped(),
		DomainSources: s.db.DomainSources(),
	}
}

// ListProteins visits loaded proteins in file order, without fields. A limit
// <= 0 means no limit.
func (s *Service) ListProteins(skip, limit int, f func(p *Protein) bool) {

	col := s.db.Collection()
	if col == nil {
		return
	}

	to := 0
	if limit > 0 {
		to = skip + limit
	}

	col.TraverseRange(skip, to, func(row *collection.Row) bool {
		aliases := make([]string, len(row.Aliases))
		copy(aliases, row.Aliases)
		return f(&Protein{
			ID:      row.ID(),
			Aliases: aliases,
		})
	})
}

func (s *Service) GetProtein(id string) (*Protein, error) {

	aliases, ok := s.db.Aliases(id)
	if !ok {
		return nil, notFound(id)
	}
	fields, _ := s.db.Lookup(id)

	return &Protein{
		ID:      aliases[0],
		Aliases: aliases,
		Fields:  fields,
	}, nil
}

func (s *Service) GetPTMs(id string) ([]database.PTM, error) {
	ptms, ok := s.db.GetPTMs(id)
	if !ok {
		return nil, notFound(id)
	}
	return ptms, nil
}

func (s *Service) GetPhosphosites(id string) ([]database.PTM, error) {
	ptms, ok := s.db.GetPhosphosites(id)
	if !ok {
		return nil, notFound(id)
	}
	return ptms, nil
}

func (s *Service) GetNearbyPTMs(id string, position, window int) ([]database.PTM, error) {
	ptms, ok := s.db.GetNearbyPTMs(id, position, window)
	if !ok {
		return nil, notFound(id)
	}
	return ptms, nil
}

func (s *Service) GetMutations(id string) ([]database.Mutation, error) {
	mutations, ok := s.db.GetMutations(id)
	if !ok {
		return nil, notFound(id)
	}
	return mutations, nil
}

func (s *Service) GetDomains(id, source string) ([]database.Domain, error) {

	if !s.db.HasDomainSource(source) {
		return nil, fmt.Errorf("%w '%s'", ErrorUnknownDomainSource, source)
	}

	domains, ok := s.db.GetDomains(id, source)
	if !ok {
		return nil, notFound(id)
	}
	return domains, nil
}

func (s *Service) GetGO(id string) ([]database.GOTerm, error) {
	terms, ok := s.db.GetGO(id)
	if !ok {
		return nil, notFound(id)
	}
	return terms, nil
}

func (s *Service) GetSequence(id string) (string, error) {
	sequence, ok := s.db.GetSequence(id)
	if !ok {
		return "", notFound(id)
	}
	return sequence, nil
}

func (s *Service) GetSpecies(id string) (string, error) {
	species, ok := s.db.GetSpecies(id)
	if !ok {
		return "", notFound(id)
	}
	return species, nil
}

func notFound(id string) error {
	return fmt.Errorf("%w: '%s'", ErrorAccessionNotFound, id)
}
