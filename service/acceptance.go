package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
	json2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

type JSON = map[string]interface{}

// Acceptance runs the HTTP scenarios against an API serving the
// database/testdata/example.tsv flatfile.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Status", func(a *biff.A) {
		resp := apiRequest("GET", "/status").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		body := resp.BodyJsonMap()
		biff.AssertEqual(body["status"], "operating")
		biff.AssertEqual(body["proteins"], json.Number("5"))
		biff.AssertEqual(body["skipped"], json.Number("1"))
		biff.AssertNotEqual(body["load_id"], "")
	})

	a.Alternative("List proteins", func(a *biff.A) {
		resp := apiRequest("GET", "/proteins").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(resp.Header.Get("Content-Type"), "application/x-ndjson")

		proteins := decodeProteins(resp.BodyBytes())
		biff.AssertEqual(len(proteins), 5)
		biff.AssertEqual(proteins[0].ID, "117210")
		biff.AssertEqual(proteins[0].Aliases, []string{"117210", "PTPRF_HUMAN", "P10586"})

		a.Alternative("Skip and limit", func(a *biff.A) {
			resp := apiRequest("GET", "/proteins").
				WithQuery("skip", "3").
				WithQuery("limit", "10").
				Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			proteins := decodeProteins(resp.BodyBytes())
			biff.AssertEqual(len(proteins), 2)
			biff.AssertEqual(proteins[0].ID, "TEST1")
			biff.AssertEqual(proteins[1].ID, "TEST2")
		})

		a.Alternative("Bad limit", func(a *biff.A) {
			resp := apiRequest("GET", "/proteins").
				WithQuery("limit", "many").
				Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})
	})

	a.Alternative("Retrieve protein by alias", func(a *biff.A) {
		resp := apiRequest("GET", "/proteins/ZSCA2_HUMAN").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		body := resp.BodyJsonMap()
		biff.AssertEqual(body["id"], "Q9NYE7")
		fields := body["fields"].(map[string]interface{})
		biff.AssertEqual(fields["species"], "homo sapiens")
	})

	a.Alternative("Retrieve missing protein", func(a *biff.A) {
		resp := apiRequest("GET", "/proteins/missing").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "accession not found: 'missing'",
				"description": "accession is not in the flatfile",
			},
		})
	})

	a.Alternative("PTMs", func(a *biff.A) {
		resp := apiRequest("GET", "/proteins/TEST1/ptms").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{
			{"position": "123", "residue": "T", "type": "Phospho"},
			{"position": "45", "residue": "K", "type": "Acetylation"},
		})
	})

	a.Alternative("PTMs empty", func(a *biff.A) {
		resp := apiRequest("GET", "/proteins/Q3TXX1/ptms").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{})
	})

	a.Alternative("Phosphosites", func(a *biff.A) {
		resp := apiRequest("GET", "/proteins/TEST1-ALIAS/phosphosites").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{
			{"position": "123", "residue": "T", "type": "Phospho"},
		})
	})

	a.Alternative("Nearby PTMs", func(a *biff.A) {
		resp := apiRequest("GET", "/proteins/Q9NYE7/nearby").
			WithQuery("position", "5").
			WithQuery("window", "10").
			Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{
			{"position": "1", "residue": "M", "type": "Acetylation"},
			{"position": "12", "residue": "S", "type": "Phosphoserine"},
		})

		a.Alternative("Missing position", func(a *biff.A) {
			resp := apiRequest("GET", "/proteins/Q9NYE7/nearby").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})
	})

	a.Alternative("Mutations", func(a *biff.A) {
		resp := apiRequest("GET", "/proteins/Q9NYE7/mutations").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{
			{
				"position":   "12",
				"original":   "S",
				"new":        "L",
				"annotation": "VAR_019971 (In dbSNP:rs3741665.)",
			},
		})
	})

	a.Alternative("Pfam domains", func(a *biff.A) {
		resp := apiRequest("GET", "/proteins/Q9NYE7/domains/pfam").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), []JSON{
			{"name": "zf-H2C2_2", "start": "320", "stop": "345"},
			{"name": "zf-H2C2_2", "start": "348", "stop": "372"},
		})

		a.Alternative("Unknown domain source", func(a *biff.A) {
			resp := apiRequest("GET", "/proteins/Q9NYE7/domains/smart").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})
	})

	a.Alternative("GO terms", func(a *biff.A) {
		resp := apiRequest("GET", "/proteins/Q9NYE7/go").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		terms := resp.BodyJson().([]interface{})
		biff.AssertEqual(len(terms), 31)
		biff.AssertEqualJson(terms[0], JSON{"id": "GO:0000790", "name": "nuclear chromatin"})
	})

	a.Alternative("Sequence", func(a *biff.A) {
		resp := apiRequest("GET", "/proteins/117210/sequence").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		sequence := resp.BodyJsonMap()["sequence"].(string)
		biff.AssertEqual(sequence[0:10], "MAPTWGPGMV")
	})

	a.Alternative("Species", func(a *biff.A) {
		resp := apiRequest("GET", "/proteins/117210/species").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"id":      "117210",
			"species": "homo sapiens",
		})
	})
}

func decodeProteins(body []byte) []*Protein {

	proteins := []*Protein{}
	d := jsontext.NewDecoder(bytes.NewReader(body))
	for {
		p := &Protein{}
		err := json2.UnmarshalDecode(d, p)
		if errors.Is(err, io.EOF) {
			break
		}
		biff.AssertNil(err)
		proteins = append(proteins, p)
	}

	return proteins
}
