package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Record is a single plugin metadata entry. Field values come straight
// from the source file; keys absent in the source decode to "".
//
// The "Invsestigate" key is misspelled in the data files themselves.
// Reading any other key would silently drop the column for every
// existing dataset, so the misspelling is part of the format.
type Record struct {
	Type         string `json:"Plugin Type"`
	Name         string `json:"Name"`
	Manufacturer string `json:"Manufacturer"`
	Description  string `json:"Description"`
	Investigate  string `json:"Invsestigate"`
}

// Load reads and decodes the plugin dataset at path. The source is
// JSON-like: comments and trailing commas are tolerated and stripped
// before decoding. Any failure — missing file, unreadable file, bad
// syntax — is returned as a single wrapped error; callers degrade to
// an empty dataset rather than exiting.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plugin data: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(jsonc.ToJSON(data), &records); err != nil {
		return nil, fmt.Errorf("parse plugin data: %w", err)
	}
	return records, nil
}

// Store holds the full dataset loaded once at startup. The dataset is
// never mutated after construction; accessors hand out copies so that
// view-side reordering cannot touch the original order.
type Store struct {
	records []Record
}

// NewStore builds a store over the given records. A nil slice is a
// valid empty dataset (the degraded state after a failed load).
func NewStore(records []Record) *Store {
	return &Store{records: records}
}

// Records returns a copy of the full dataset in load order.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the total number of records in the dataset.
func (s *Store) Len() int {
	return len(s.records)
}
