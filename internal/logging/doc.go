// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: colored console output for human readability
//
// The library default is a no-op logger; embedders that want output pass a
// configured logger in explicitly.
package logging
