// Package theme provides status area styling: severity colors, chrome
// colors and indicator glyphs loaded from TOML theme files. Bundled themes
// are compiled into the binary; user themes in ~/.config/statui/themes/
// override bundled ones by name and hot-reload while the TUI runs.
package theme
