package apiproteinv1

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/proteomedb/database"
)

func getDomains(ctx context.Context) ([]database.Domain, error) {
	source := box.GetUrlParameter(ctx, "source")
	return GetServicer(ctx).GetDomains(accession(ctx), source)
}
