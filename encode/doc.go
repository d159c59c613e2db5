// Package encode serializes item trees back to inventory document
// text.
//
// Encode writes the document form: the primary tree depth first in
// pre-order, one indent unit per nesting level, with hoisted subtrees
// deferred to their own level-1 heading sections after the primary
// tree, in breadth first order.
//
// Display writes a human oriented tree listing (indentation, a *
// marker on hoisted items, short identifiers), optionally colorized
// for terminals.
package encode
