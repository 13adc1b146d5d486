package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
	"github.com/fulldump/box/boxopenapi"

	"github.com/fulldump/proteomedb/api/apiproteinv1"
	"github.com/fulldump/proteomedb/service"
)

func Build(s service.Servicer, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		box.SetResponseHeader("Content-Type", "application/json"),
	)

	apiproteinv1.BuildV1Protein(v1, s).
		WithInterceptors(
			InterceptorUnavailable(s),
			injectServicer(s),
		)

	v1.Resource("/status").
		WithActions(box.Get(func() *service.Status {
			return s.GetStatus()
		}))

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}))

	spec := boxopenapi.Spec(b)
	spec.Info.Title = "ProteomeDB"
	spec.Info.Description = "Read-only accession lookups over a ProteomeScout flatfile held in memory."
	b.Handle("GET", "/openapi.json", func(r *http.Request) any {

		spec.Servers = []boxopenapi.Server{
			{
				Url: "https://" + r.Host,
			},
			{
				Url: "http://" + r.Host,
			},
		}

		return spec
	})

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(apiproteinv1.SetServicer(ctx, s))
		}
	}
}
