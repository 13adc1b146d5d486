package apiproteinv1

import (
	"context"
)

type SequenceResponse struct {
	ID       string `json:"id"`
	Sequence string `json:"sequence"`
}

type SpeciesResponse struct {
	ID      string `json:"id"`
	Species string `json:"species"`
}

func getSequence(ctx context.Context) (*SequenceResponse, error) {

	id := accession(ctx)
	sequence, err := GetServicer(ctx).GetSequence(id)
	if err != nil {
		return nil, err
	}

	return &SequenceResponse{
		ID:       id,
		Sequence: sequence,
	}, nil
}

func getSpecies(ctx context.Context) (*SpeciesResponse, error) {

	id := accession(ctx)
	species, err := GetServicer(ctx).GetSpecies(id)
	if err != nil {
		return nil, err
	}

	return &SpeciesResponse{
		ID:      id,
		Species: species,
	}, nil
}
