package database

// GetSequence returns the amino acid sequence as stored in the flatfile.
func (db *Database) GetSequence(id string) (string, bool) {
	return db.field(id, FieldSequence)
}

func (db *Database) GetSpecies(id string) (string, bool) {
	return db.field(id, FieldSpecies)
}
