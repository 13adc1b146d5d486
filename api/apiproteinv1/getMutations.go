package apiproteinv1

import (
	"context"

	"github.com/fulldump/proteomedb/database"
)

func getMutations(ctx context.Context) ([]database.Mutation, error) {
	return GetServicer(ctx).GetMutations(accession(ctx))
}
