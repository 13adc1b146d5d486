package apiproteinv1

import (
	"context"

	"github.com/fulldump/proteomedb/service"
)

type servicerKey struct{}

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, servicerKey{}, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	// injected by the interceptor built alongside the /proteins resource
	return ctx.Value(servicerKey{}).(service.Servicer)
}
