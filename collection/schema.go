package collection

import "log"

// DefaultColumns is the column count of the ProteomeScout flatfile export.
const DefaultColumns = 19

// Schema describes the flatfile layout a collection is loaded against. The
// header is checked before any data row is read.
type Schema struct {
	Columns int         `json:"columns"`
	Fields  []string    `json:"fields"` // must be present among header columns 2..N-1
	Logger  *log.Logger `json:"-"`
}

func DefaultSchema() *Schema {
	return &Schema{
		Columns: DefaultColumns,
		Fields:  []string{"modifications", "mutations"},
	}
}

func (s *Schema) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}
