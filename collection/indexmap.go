package collection

// IndexMap binds every alias of a row to the same *Row, so many accessions
// share one record.
type IndexMap struct {
	Entries map[string]*Row
}

func NewIndexMap() *IndexMap {
	return &IndexMap{
		Entries: map[string]*Row{},
	}
}

// AddRow binds all aliases of row. Aliases already bound to a different row
// are rebound to this one (last row wins) and returned.
func (i *IndexMap) AddRow(row *Row) (rebound []string) {
	for _, alias := range row.Aliases {
		if previous, exists := i.Entries[alias]; exists && previous != row {
			rebound = append(rebound, alias)
		}
		i.Entries[alias] = row
	}
	return
}

func (i *IndexMap) Get(alias string) (*Row, bool) {
	row, ok := i.Entries[alias]
	return row, ok
}

func (i *IndexMap) Len() int {
	return len(i.Entries)
}
