package catalog

import (
	"sort"
	"strings"
)

// Filter returns the records matching query, in their original order.
// An empty or all-whitespace query matches everything. Otherwise the
// query is lowercased as-is (no trimming) and tested as a substring of
// the record's search text. Filtering never reorders.
func Filter(records []Record, query string) []Record {
	if strings.TrimSpace(query) == "" {
		out := make([]Record, len(records))
		copy(out, records)
		return out
	}

	needle := strings.ToLower(query)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(searchText(r), needle) {
			out = append(out, r)
		}
	}
	return out
}

// searchText joins the five field values with single spaces and
// lowercases the result. A missing field contributes an empty segment,
// so it is still searchable as "".
func searchText(r Record) string {
	return strings.ToLower(strings.Join([]string{
		r.Type,
		r.Name,
		r.Manufacturer,
		r.Description,
		r.Investigate,
	}, " "))
}

// Sort orders records by the lowercased value of field. The input
// slice is sorted in place: ascending and stable, so equal keys keep
// their relative order. Descending output is produced by reversing the
// ascending result wholesale, which also reverses the relative order
// of tied keys. That tie behavior is observable and intentional; a
// stable descending comparator would differ exactly on duplicates.
func Sort(records []Record, field Field, descending bool) {
	if len(records) == 0 {
		return
	}

	sort.SliceStable(records, func(i, j int) bool {
		return sortKey(records[i], field) < sortKey(records[j], field)
	})

	if descending {
		for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
			records[i], records[j] = records[j], records[i]
		}
	}
}

func sortKey(r Record, field Field) string {
	return strings.ToLower(field.Value(r))
}
