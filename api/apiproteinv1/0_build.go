package apiproteinv1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/proteomedb/service"
)

func BuildV1Protein(v1 *box.R, s service.Servicer) *box.R {

	proteins := v1.Resource("/proteins").
		WithActions(
			box.Get(listProteins),
		)

	v1.Resource("/proteins/{id}").
		WithActions(
			box.Get(getProtein),
		)

	v1.Resource("/proteins/{id}/ptms").WithActions(box.Get(getPTMs))
	v1.Resource("/proteins/{id}/phosphosites").WithActions(box.Get(getPhosphosites))
	v1.Resource("/proteins/{id}/nearby").WithActions(box.Get(getNearbyPTMs))
	v1.Resource("/proteins/{id}/mutations").WithActions(box.Get(getMutations))
	v1.Resource("/proteins/{id}/domains/{source}").WithActions(box.Get(getDomains))
	v1.Resource("/proteins/{id}/go").WithActions(box.Get(getGO))
	v1.Resource("/proteins/{id}/sequence").WithActions(box.Get(getSequence))
	v1.Resource("/proteins/{id}/species").WithActions(box.Get(getSpecies))

	return proteins
}
