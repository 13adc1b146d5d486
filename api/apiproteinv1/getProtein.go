package apiproteinv1

import (
	"context"

	"github.com/fulldump/proteomedb/service"
)

func getProtein(ctx context.Context) (*service.Protein, error) {
	return GetServicer(ctx).GetProtein(accession(ctx))
}
