package collection

import (
	"fmt"
	"os"
	"strings"
	"time"
)

func Environment(f func(filename string)) {
	filename := fmt.Sprintf("temp-%v", time.Now().UnixNano())
	defer os.Remove(filename)

	f(filename)
}

var testHeaders = []string{
	"MS_id", "query_accession", "gene", "locus", "protein_name", "species",
	"sequence", "modifications", "evidence", "mutations", "GO_terms",
	"pfam_domains", "uniprot_domains", "kinase_loops", "macro_molecular",
	"topological", "structure", "scansite_predictions", "acc_history",
}

// testLine builds a data line with the given row index, alias list and
// values for the named fields, every other column left empty.
func testLine(index, aliases string, fields map[string]string) string {
	columns := make([]string, len(testHeaders))
	columns[0] = index
	columns[1] = aliases
	for i := 2; i < len(testHeaders); i++ {
		columns[i] = fields[testHeaders[i]]
	}
	return strings.Join(columns, "\t")
}

func writeFlatfile(filename string, lines ...string) {
	content := strings.Join(testHeaders, "\t") + "\n" + strings.Join(lines, "\n") + "\n"
	err := os.WriteFile(filename, []byte(content), 0666)
	if err != nil {
		panic(err)
	}
}
