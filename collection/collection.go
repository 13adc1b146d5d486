package collection

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sequence columns are long, lines up to 16 MiB are accepted.
const maxLineCapacity = 16 * 1024 * 1024

type Collection struct {
	Filename   string // Just informative...
	Schema     *Schema
	Headers    []string // names of columns 2..N-1, header order
	Rows       []*Row
	UniqueKeys []string // canonical accession of every row, file order
	Index      Index
	Skipped    int // malformed data rows not loaded
}

// OpenCollection reads the whole flatfile into memory. The collection is not
// modified once returned, so it can be read concurrently without locking.
func OpenCollection(filename string, schema *Schema) (*Collection, error) {

	f, err := os.Open(filename)
	if err != nil {
		return nil, &InvalidFormatError{Filename: filename, Reason: "open file", Err: err}
	}
	defer f.Close()

	return ReadCollection(f, filename, schema)
}

// ReadCollection is OpenCollection over an already opened reader, filename is
// only used for messages.
func ReadCollection(r io.Reader, filename string, schema *Schema) (*Collection, error) {

	if schema == nil {
		schema = DefaultSchema()
	}
	logger := schema.logger()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineCapacity)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, &InvalidFormatError{Filename: filename, Reason: "read header", Err: err}
		}
		return nil, &InvalidFormatError{Filename: filename, Reason: "file is empty"}
	}

	names, err := readHeader(scanner.Text(), schema)
	if err != nil {
		return nil, &InvalidFormatError{Filename: filename, Reason: err.Error()}
	}

	collection := &Collection{
		Filename:   filename,
		Schema:     schema,
		Headers:    names[2:],
		Rows:       []*Row{},
		UniqueKeys: []string{},
		Index:      NewIndexMap(),
	}

	line := 1
	for scanner.Scan() {
		line++

		text := strings.TrimSuffix(scanner.Text(), "\r")
		if text == "" {
			continue
		}

		row, err := parseRow(text, names)
		if err != nil {
			logger.Printf("WARNING: %s line %d skipped: %s\n", filename, line, err.Error())
			collection.Skipped++
			continue
		}

		collection.addRow(row, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &InvalidFormatError{Filename: filename, Reason: fmt.Sprintf("read line %d", line+1), Err: err}
	}

	return collection, nil
}

func readHeader(text string, schema *Schema) ([]string, error) {

	columns := strings.Split(strings.TrimSuffix(text, "\r"), "\t")
	if len(columns) != schema.Columns {
		return nil, fmt.Errorf("header has %d columns, expected %d", len(columns), schema.Columns)
	}
	if len(columns) < 3 {
		return nil, fmt.Errorf("header needs at least 3 columns")
	}

	names := make([]string, len(columns))
	present := map[string]bool{}
	for i, column := range columns {
		names[i] = strings.TrimSpace(column)
		if i >= 2 {
			present[names[i]] = true
		}
	}

	for _, field := range schema.Fields {
		if !present[field] {
			return nil, fmt.Errorf("header is missing field '%s'", field)
		}
	}

	return names, nil
}

func parseRow(text string, names []string) (*Row, error) {

	columns := strings.Split(text, "\t")
	if len(columns) < len(names) {
		return nil, fmt.Errorf("row has %d columns, expected %d", len(columns), len(names))
	}

	aliases := []string{}
	for _, alias := range strings.Split(columns[1], ";") {
		alias = strings.TrimSpace(alias)
		if alias == "" {
			continue
		}
		aliases = append(aliases, alias)
	}
	if len(aliases) == 0 {
		return nil, fmt.Errorf("row has no accession")
	}

	fields := make(map[string]string, len(names)-2)
	for i := 2; i < len(names); i++ {
		fields[names[i]] = columns[i]
	}

	return &Row{
		Aliases: aliases,
		Fields:  fields,
	}, nil
}

func (c *Collection) addRow(row *Row, line int) {

	row.I = len(c.Rows)
	row.Line = line
	c.Rows = append(c.Rows, row)
	c.UniqueKeys = append(c.UniqueKeys, row.ID())

	rebound := c.Index.AddRow(row)
	for _, alias := range rebound {
		c.Schema.logger().Printf("WARNING: %s line %d: accession '%s' already loaded, now points to this row\n", c.Filename, line, alias)
	}
}

func (c *Collection) Get(alias string) (*Row, bool) {
	return c.Index.Get(alias)
}

// Traverse visits every row once, in file order, until f returns false.
// Aliases are not visited, use this to iterate the whole dataset.
func (c *Collection) Traverse(f func(row *Row) bool) {
	for _, row := range c.Rows {
		if !f(row) {
			return
		}
	}
}

func (c *Collection) TraverseRange(from, to int, f func(row *Row) bool) {
	for i, row := range c.Rows {
		if i < from {
			continue
		}
		if to > 0 && i >= to {
			break
		}
		if !f(row) {
			return
		}
	}
}

func (c *Collection) Len() int {
	return len(c.Rows)
}
