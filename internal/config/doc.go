// Package config loads the landing page's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/bureaucrat/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - cases_url: http://127.0.0.1:8080/get-cases
//   - request_timeout: 5s
//   - content_file: empty (embedded page content)
//   - log_file: ~/.local/state/bureaucrat/bureaucrat.log
//   - log_level: info
//
// # TOML Format
//
//	cases_url = "https://functions.example.net/get-cases"
//	request_timeout = "3s"
//	content_file = "~/bureaucrat/page.yaml"
//	log_file = "~/.local/state/bureaucrat/bureaucrat.log"
//	log_level = "debug"
//
// Every field is optional. Tilde expansion is applied to content_file and
// log_file. A malformed file, an unparseable or non-positive duration, or an
// unknown log level is reported as a "parse config" error; a missing file is
// not an error.
package config
