// Package catalog loads and queries the plugin metadata dataset.
//
// The dataset is an ordered JSON array of records read once at startup
// and never mutated afterwards. Store owns the full dataset; Filter and
// Sort are pure functions the UI layer runs over copies, so the load
// order is always recoverable by clearing the search.
//
// Load is tolerant of JSON-with-comments input (the files are hand
// maintained) but strict about everything else: any read or decode
// failure surfaces as an error the caller turns into an empty dataset
// plus a user-visible notice. Nothing in this package can fail after a
// successful load.
package catalog
