// Package app wires plugview's pieces together: it loads the optional
// config file, the saved preferences, and the plugin dataset, then
// hands everything to the UI. Load failure of the dataset is
// deliberately non-fatal here — the browser starts empty and tells the
// user what went wrong instead of refusing to start.
package app
