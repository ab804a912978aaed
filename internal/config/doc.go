// Package config loads textkit settings from defaults, an optional
// textkit.yaml, dotenv files and TEXTKIT_* environment variables. Later
// sources win.
package config
