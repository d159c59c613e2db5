// Package ir provides the in-memory representation of an inventory
// document as a tree of items.
//
// # Overview
//
// An inventory document is a strict ownership forest rooted at one
// synthetic root item. Every other item is owned by exactly one
// parent's Children slice at any instant. Parent links are derived
// state: they are recomputed by UpdateParents after structural
// mutations and are never consulted to decide ownership.
//
// # Structural operations
//
// Move, Checkout, SetIdentifier, ClearIdentifier and SetHoisted are
// the mutations the surrounding tooling applies between parsing a
// document and rendering it back. Each caller is responsible for
// running UpdateParents once the mutation is done.
//
// # Traversal
//
// Flatten visits a subtree in breadth first or depth first pre-order.
// Both orders are deterministic and use explicit queues rather than
// call recursion, so arbitrarily deep documents cannot exhaust the
// stack.
//
// # Related Packages
//
//   - github.com/invdot/inv-format/go-inv/parse - document text to item tree
//   - github.com/invdot/inv-format/go-inv/encode - item tree to document text
//   - github.com/invdot/inv-format/go-inv/resolve - query to item lookup
package ir
