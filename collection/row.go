package collection

type Row struct {
	I       int // position in Rows
	Line    int // line number in the flatfile, header is line 1
	Aliases []string
	Fields  map[string]string
}

// ID returns the canonical accession, the first alias of the row.
func (r *Row) ID() string {
	return r.Aliases[0]
}

func (r *Row) Field(name string) (string, bool) {
	value, ok := r.Fields[name]
	return value, ok
}
