// Package parse parses inventory document text into item trees.
//
// # Usage
//
//	root, err := parse.Parse(data, parse.WithFilename("inventory.md"))
//	if err != nil {
//	    return err
//	}
//
// The parser is strict and fail fast: any node shape outside the
// document grammar fails with ErrStructural and no tree is returned.
// Identifier decoding failures surface as ErrStructural wrapping
// ident.ErrInvalidIdentifier.
//
// # Grammar
//
// At the top level, list nodes and level-1 heading nodes alternate
// freely. A list's items append to the current root, which starts as
// the synthetic document root; a heading names a previously seen
// hoist reference and makes that item the current root for the lists
// that follow.
//
// Each list item carries exactly one of a plain text label or a
// [[#Name]] hoist reference, at most one nested list (its children),
// and at most one link (its identifier). Hoist reference names must
// be unique within a document.
//
// # Related Packages
//
//   - github.com/invdot/inv-format/go-inv/markup - text to attributed nodes
//   - github.com/invdot/inv-format/go-inv/ir - item tree representation
//   - github.com/invdot/inv-format/go-inv/encode - item tree to text
package parse
