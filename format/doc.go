// Package format names the text notations structext reads and writes.
//
// # Formats
//
//   - BlockFormat: indentation structured block text ("key: value", "- item")
//     handled by the hand-written parser and serializer.
//   - YAMLFormat: full YAML, handled by github.com/goccy/go-yaml.
//   - JSONFormat: bracketed hierarchical text.
//
// # Related Packages
//
//   - github.com/signadot/structext/parse - Parse text to IR
//   - github.com/signadot/structext/encode - Encode IR to text
package format
