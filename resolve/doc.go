// Package resolve maps short user queries to exactly one item in an
// inventory tree.
//
// Resolution prefers identifiers over names as an anti-typo
// safeguard: a query that decodes as a full identifier matches only
// by identifier, a prefix of a canonical identifier beats any name
// prefix, and name prefixes only match at all when the query is
// longer than four characters.
//
// Filter evaluates a boolean expression against every item instead,
// for queries that want a set rather than a single match.
package resolve
