package collection

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"sync"
	"testing"

	. "github.com/fulldump/biff"
)

func quietSchema() (*Schema, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	schema := DefaultSchema()
	schema.Logger = log.New(buffer, "", 0)
	return schema, buffer
}

func TestOpenCollection(t *testing.T) {
	Environment(func(filename string) {

		// Setup
		writeFlatfile(filename,
			testLine("1", "P001; Q001 ;ALPHA_HUMAN", map[string]string{
				"species":       "homo sapiens",
				"modifications": "T123-Phospho;K45-Acetylation",
				"mutations":     "A45T",
			}),
			testLine("2", "P002", map[string]string{
				"species": "mus musculus",
			}),
		)
		schema, _ := quietSchema()

		// Run
		c, err := OpenCollection(filename, schema)

		// Check
		AssertNil(err)
		AssertEqual(c.Len(), 2)
		AssertEqual(c.UniqueKeys, []string{"P001", "P002"})
		AssertEqual(c.Index.Len(), 4)
		AssertEqual(c.Headers, testHeaders[2:])
		AssertEqual(c.Skipped, 0)
	})
}

func TestOpenCollection_AliasesShareRow(t *testing.T) {
	Environment(func(filename string) {

		writeFlatfile(filename,
			testLine("1", "P001; Q001 ;ALPHA_HUMAN", map[string]string{
				"modifications": "T123-Phospho",
			}),
		)
		schema, _ := quietSchema()

		c, err := OpenCollection(filename, schema)
		AssertNil(err)

		p, _ := c.Get("P001")
		q, _ := c.Get("Q001")
		alpha, ok := c.Get("ALPHA_HUMAN")
		AssertTrue(ok)
		AssertTrue(p == q)
		AssertTrue(q == alpha)
		AssertEqual(p.ID(), "P001")
		AssertEqual(p.Line, 2)
		AssertEqual(p.Aliases, []string{"P001", "Q001", "ALPHA_HUMAN"})

		_, found := c.Get("missing")
		AssertFalse(found)
	})
}

func TestOpenCollection_FieldsAreRaw(t *testing.T) {
	Environment(func(filename string) {

		writeFlatfile(filename,
			testLine("1", "P001", map[string]string{
				"protein_name": "  padded name ",
				"acc_history":  "last column",
			}),
		)
		schema, _ := quietSchema()

		c, err := OpenCollection(filename, schema)
		AssertNil(err)

		row, _ := c.Get("P001")
		AssertEqual(len(row.Fields), len(testHeaders)-2)

		name, _ := row.Field("protein_name")
		AssertEqual(name, "  padded name ")

		last, _ := row.Field("acc_history")
		AssertEqual(last, "last column")

		_, hasIndex := row.Field("MS_id")
		AssertFalse(hasIndex)
		_, hasAliases := row.Field("query_accession")
		AssertFalse(hasAliases)
	})
}

func TestOpenCollection_DuplicatedCanonical(t *testing.T) {
	Environment(func(filename string) {

		writeFlatfile(filename,
			testLine("1", "P001;SHARED", map[string]string{"species": "first"}),
			testLine("2", "P001", map[string]string{"species": "second"}),
		)
		schema, logs := quietSchema()

		c, err := OpenCollection(filename, schema)
		AssertNil(err)

		AssertEqual(c.UniqueKeys, []string{"P001", "P001"})

		row, _ := c.Get("P001")
		species, _ := row.Field("species")
		AssertEqual(species, "second")

		shared, _ := c.Get("SHARED")
		species, _ = shared.Field("species")
		AssertEqual(species, "first")

		AssertTrue(strings.Contains(logs.String(), "accession 'P001' already loaded"))
	})
}

func TestOpenCollection_SkipMalformedRows(t *testing.T) {
	Environment(func(filename string) {

		writeFlatfile(filename,
			testLine("1", "P001", nil),
			"2\tP002\tonly three columns",
			testLine("3", " ; ", nil),
			"",
			testLine("4", "P004", nil),
		)
		schema, logs := quietSchema()

		c, err := OpenCollection(filename, schema)
		AssertNil(err)

		AssertEqual(c.UniqueKeys, []string{"P001", "P004"})
		AssertEqual(c.Skipped, 2)
		AssertTrue(strings.Contains(logs.String(), "line 3 skipped"))
		AssertTrue(strings.Contains(logs.String(), "line 4 skipped: row has no accession"))

		row, _ := c.Get("P004")
		AssertEqual(row.I, 1)
		AssertEqual(row.Line, 6)
	})
}

func TestOpenCollection_FileNotFound(t *testing.T) {

	_, err := OpenCollection("this-file-does-not-exist.tsv", nil)

	AssertNotNil(err)
	AssertTrue(errors.Is(err, ErrInvalidFormat))
	AssertTrue(errors.Is(err, os.ErrNotExist))
}

func TestOpenCollection_EmptyFile(t *testing.T) {
	Environment(func(filename string) {

		os.WriteFile(filename, []byte{}, 0666)

		_, err := OpenCollection(filename, nil)

		AssertTrue(errors.Is(err, ErrInvalidFormat))
		AssertTrue(strings.Contains(err.Error(), "file is empty"))
	})
}

func TestOpenCollection_WrongColumnCount(t *testing.T) {
	Environment(func(filename string) {

		content := strings.Join(testHeaders[:18], "\t") + "\n" + testLine("1", "P001", nil) + "\n"
		os.WriteFile(filename, []byte(content), 0666)

		_, err := OpenCollection(filename, nil)

		invalid := &InvalidFormatError{}
		AssertTrue(errors.As(err, &invalid))
		AssertEqual(invalid.Filename, filename)
		AssertEqual(invalid.Reason, "header has 18 columns, expected 19")
	})
}

func TestOpenCollection_ConfigurableColumns(t *testing.T) {

	content := "id\taccessions\tmodifications\tmutations\n" +
		"1\tP001;Q001\tS5-Phospho\t\n"

	schema, _ := quietSchema()
	schema.Columns = 4

	c, err := ReadCollection(strings.NewReader(content), "inline", schema)
	AssertNil(err)
	AssertEqual(c.Headers, []string{"modifications", "mutations"})

	row, ok := c.Get("Q001")
	AssertTrue(ok)
	AssertEqual(row.Fields, map[string]string{"modifications": "S5-Phospho", "mutations": ""})
}

func TestOpenCollection_MissingField(t *testing.T) {

	content := "id\taccessions\tmodifications\tsequence\n"

	schema, _ := quietSchema()
	schema.Columns = 4

	_, err := ReadCollection(strings.NewReader(content), "inline", schema)

	AssertTrue(errors.Is(err, ErrInvalidFormat))
	AssertTrue(strings.Contains(err.Error(), "header is missing field 'mutations'"))
}

func TestOpenCollection_CRLF(t *testing.T) {

	content := strings.Join(testHeaders, "\t") + "\r\n" +
		testLine("1", "P001", map[string]string{"acc_history": "old"}) + "\r\n"

	schema, _ := quietSchema()
	c, err := ReadCollection(strings.NewReader(content), "inline", schema)
	AssertNil(err)

	row, _ := c.Get("P001")
	history, _ := row.Field("acc_history")
	AssertEqual(history, "old")
}

func TestTraverse(t *testing.T) {

	content := strings.Join(testHeaders, "\t") + "\n" +
		testLine("1", "A;A2", nil) + "\n" +
		testLine("2", "B;B2;B3", nil) + "\n" +
		testLine("3", "C", nil) + "\n"

	schema, _ := quietSchema()
	c, err := ReadCollection(strings.NewReader(content), "inline", schema)
	AssertNil(err)

	visited := []string{}
	c.Traverse(func(row *Row) bool {
		visited = append(visited, row.ID())
		return true
	})
	AssertEqual(visited, []string{"A", "B", "C"})

	visited = []string{}
	c.Traverse(func(row *Row) bool {
		visited = append(visited, row.ID())
		return row.ID() != "B"
	})
	AssertEqual(visited, []string{"A", "B"})

	visited = []string{}
	c.TraverseRange(1, 0, func(row *Row) bool {
		visited = append(visited, row.ID())
		return true
	})
	AssertEqual(visited, []string{"B", "C"})
}

func TestCollection_ConcurrentReads(t *testing.T) {

	content := strings.Join(testHeaders, "\t") + "\n" +
		testLine("1", "A;A2", map[string]string{"species": "homo sapiens"}) + "\n"

	schema, _ := quietSchema()
	c, err := ReadCollection(strings.NewReader(content), "inline", schema)
	AssertNil(err)

	n := 100
	found := make([]bool, n)

	wg := &sync.WaitGroup{}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			row, ok := c.Get("A2")
			found[i] = ok && row.Fields["species"] == "homo sapiens"
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		AssertTrue(found[i])
	}
}

func TestOpenCollection_WhitespaceRowIsSkipped(t *testing.T) {

	content := strings.Join(testHeaders, "\t") + "\n" +
		strings.Repeat("\t", len(testHeaders)-1) + "\n" +
		"   \n" +
		testLine("3", "P003", nil) + "\n"

	schema, logs := quietSchema()
	c, err := ReadCollection(strings.NewReader(content), "inline", schema)
	AssertNil(err)

	AssertEqual(c.UniqueKeys, []string{"P003"})
	AssertEqual(c.Skipped, 2)
	AssertTrue(strings.Contains(logs.String(), "line 2 skipped: row has no accession"))
	AssertTrue(strings.Contains(logs.String(), "line 3 skipped"))
}
