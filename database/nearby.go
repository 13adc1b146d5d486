package database

import (
	"math"
	"strconv"

	"github.com/google/btree"
)

type sitePTM struct {
	Position int
	Order    int // position in the modifications field, breaks ties
	PTM      PTM
}

func sitesLess(a, b sitePTM) bool {
	if a.Position != b.Position {
		return a.Position < b.Position
	}
	return a.Order < b.Order
}

// NearbyPTMs returns the PTMs with position in [position-window,
// position+window], sorted by position. PTMs without a numeric position are
// ignored.
func NearbyPTMs(ptms []PTM, position, window int) []PTM {

	result := []PTM{}
	if window < 0 {
		return result
	}

	sites := btree.NewG(8, sitesLess)
	for i, ptm := range ptms {
		n, err := strconv.Atoi(ptm.Position)
		if err != nil {
			continue
		}
		sites.ReplaceOrInsert(sitePTM{Position: n, Order: i, PTM: ptm})
	}

	from, to := windowBounds(position, window)
	sites.AscendGreaterOrEqual(sitePTM{Position: from, Order: -1}, func(site sitePTM) bool {
		if site.Position > to {
			return false
		}
		result = append(result, site.PTM)
		return true
	})

	return result
}

// windowBounds returns the inclusive [from, to] range, saturated at the int
// limits instead of wrapping around. window must not be negative.
func windowBounds(position, window int) (from, to int) {
	from = position - window
	if from > position {
		from = math.MinInt
	}
	to = position + window
	if to < position {
		to = math.MaxInt
	}
	return from, to
}

func (db *Database) GetNearbyPTMs(id string, position, window int) ([]PTM, bool) {
	ptms, ok := db.GetPTMs(id)
	if !ok {
		return nil, false
	}
	return NearbyPTMs(ptms, position, window), true
}
