package service

import (
	"errors"

	"github.com/fulldump/proteomedb/database"
)

var (
	ErrorAccessionNotFound   = errors.New("accession not found")
	ErrorUnknownDomainSource = errors.New("unknown domain source")
)

type Servicer interface { // todo: review naming
	GetStatus() *Status
	ListProteins(skip, limit int, f func(p *Protein) bool)
	GetProtein(id string) (*Protein, error)
	GetPTMs(id string) ([]database.PTM, error)
	GetPhosphosites(id string) ([]database.PTM, error)
	GetNearbyPTMs(id string, position, window int) ([]database.PTM, error)
	GetMutations(id string) ([]database.Mutation, error)
	GetDomains(id, source string) ([]database.Domain, error)
	GetGO(id string) ([]database.GOTerm, error)
	GetSequence(id string) (string, error)
	GetSpecies(id string) (string, error)
}
