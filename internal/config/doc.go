// Package config discovers plugview's optional configuration file.
//
// The config lives at ~/.config/plugview/config.toml and currently
// carries two keys: data_path (where the plugin dataset lives; defaults
// to Plugins.json beside the binary) and theme (pins a theme name over
// the saved preference). A missing config is normal and yields
// defaults; an unparseable one is reported so bad edits don't pass
// silently.
package config
