package collection

// Index resolves an accession to the row holding it. Only exact key lookups
// are supported.
type Index interface {
	AddRow(row *Row) (rebound []string)
	Get(alias string) (*Row, bool)
	Len() int
}
