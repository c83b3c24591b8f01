package db

import (
	"log"

	"github.com/nvoss/quill/domain"
)

// LoadOrSeed loads the stored collection. Missing state yields a freshly
// seeded welcome collection; corrupt state falls back to the seed as
// well (recovered reports that, so the UI can surface a recovery
// status). The seed is written back immediately so the slot exists.
func LoadOrSeed(s CollectionStore) (col *domain.Collection, recovered bool, err error) {
	col, err = s.Load()
	if err != nil {
		log.Printf("Stored notes could not be read, starting over: %v", err)
		col = domain.Seed()
		recovered = true
	} else if col == nil || len(col.Notes) == 0 {
		col = domain.Seed()
	} else {
		return col, false, nil
	}

	if saveErr := s.Save(col); saveErr != nil {
		return col, recovered, saveErr
	}
	return col, recovered, nil
}
