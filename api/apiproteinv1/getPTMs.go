package apiproteinv1

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/proteomedb/database"
)

func getPTMs(ctx context.Context) ([]database.PTM, error) {
	return GetServicer(ctx).GetPTMs(accession(ctx))
}

func getPhosphosites(ctx context.Context) ([]database.PTM, error) {
	return GetServicer(ctx).GetPhosphosites(accession(ctx))
}

// getNearbyPTMs expects ?position=<n>&window=<n>, window defaults to 0.
func getNearbyPTMs(ctx context.Context) ([]database.PTM, error) {

	query := box.GetRequest(ctx).URL.Query()
	if query.Get("position") == "" {
		return nil, ErrBadParameter
	}
	position, err := queryInt(query, "position", 0)
	if err != nil {
		return nil, err
	}
	window, err := queryInt(query, "window", 0)
	if err != nil {
		return nil, err
	}

	return GetServicer(ctx).GetNearbyPTMs(accession(ctx), position, window)
}
