package api

import (
	"bytes"
	"compress/gzip"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/fulldump/proteomedb/database"
	"github.com/fulldump/proteomedb/service"
)

func TestUnavailableWhileOpening(t *testing.T) {

	db := database.NewDatabase(&database.Config{
		Flatfile: fixture,
	})

	b := Build(service.NewService(db), "test")
	b.WithInterceptors(
		PrettyErrorInterceptor,
	)
	api := apitest.NewWithHandler(b)

	resp := api.Request("GET", "/v1/proteins/Q9NYE7/ptms").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusServiceUnavailable)

	status := api.Request("GET", "/v1/status").Do()
	biff.AssertEqual(status.StatusCode, http.StatusOK)
	biff.AssertEqual(status.BodyJsonMap()["status"], database.StatusOpening)

	biff.AssertNil(db.Load())

	resp = api.Request("GET", "/v1/proteins/Q9NYE7/ptms").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusOK)
}

func TestRequestId(t *testing.T) {

	db, err := database.Open(fixture)
	biff.AssertNil(err)

	logs := &bytes.Buffer{}
	b := Build(service.NewService(db), "test")
	b.WithInterceptors(
		AccessLog(log.New(logs, "ACCESS: ", 0)),
		RequestId,
	)
	api := apitest.NewWithHandler(b)

	resp := api.Request("GET", "/v1/proteins/Q9NYE7/species").Do()
	generated := resp.Header.Get(RequestIdHeader)
	biff.AssertEqual(len(generated), 36)
	biff.AssertTrue(strings.Contains(logs.String(), generated))

	resp = api.Request("GET", "/v1/proteins/Q9NYE7/species").
		WithHeader(RequestIdHeader, "my-request").
		Do()
	biff.AssertEqual(resp.Header.Get(RequestIdHeader), "my-request")
}

func TestCompression(t *testing.T) {

	db, err := database.Open(fixture)
	biff.AssertNil(err)

	b := Build(service.NewService(db), "test")
	b.WithInterceptors(
		Compression,
	)

	req := httptest.NewRequest("GET", "/v1/proteins/117210/sequence", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	b.ServeHTTP(w, req)

	biff.AssertEqual(w.Header().Get("Content-Encoding"), "gzip")

	gz, err := gzip.NewReader(w.Body)
	biff.AssertNil(err)
	body, err := io.ReadAll(gz)
	biff.AssertNil(err)
	biff.AssertTrue(strings.Contains(string(body), `"sequence":"MAPTWGPGMV`))
}
