// Package claude manages the Claude configuration document (~/.claude.json).
// It loads the document, empties the per-project conversation history and
// writes the result back while keeping every other field intact.
//
// The package supports:
//   - Loading and structurally validating the document
//   - Counting and clearing projects[*].history
//   - Preserving unknown fields, key order and number precision on rewrite
//   - Plain or atomic (temp file + rename) persistence
package claude
