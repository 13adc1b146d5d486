package apiproteinv1

import (
	"context"
	"net/http"

	json2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/proteomedb/service"
)

// listProteins streams one JSON document per protein (not per alias).
func listProteins(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	query := r.URL.Query()
	skip, err := queryInt(query, "skip", 0)
	if err != nil {
		return err
	}
	limit, err := queryInt(query, "limit", 0)
	if err != nil {
		return err
	}

	s := GetServicer(ctx)

	w.Header().Set("Content-Type", "application/x-ndjson")

	e := jsontext.NewEncoder(w)
	var writeErr error
	s.ListProteins(skip, limit, func(p *service.Protein) bool {
		writeErr = json2.MarshalEncode(e, p)
		return writeErr == nil
	})

	return writeErr
}
