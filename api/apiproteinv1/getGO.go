package apiproteinv1

import (
	"context"

	"github.com/fulldump/proteomedb/database"
)

func getGO(ctx context.Context) ([]database.GOTerm, error) {
	return GetServicer(ctx).GetGO(accession(ctx))
}
