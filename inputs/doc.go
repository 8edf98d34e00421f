// Package inputs reads the two JSON-based collaborator artifacts: MOPE
// lists (JSON-Lines) and automorphism descriptions (a single JSON
// object). Graph files are read by pgraph.ReadGraph instead, since their
// plain-text format has nothing to do with encoding/json.
package inputs
