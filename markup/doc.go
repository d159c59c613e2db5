// Package markup converts raw document text into the attributed node
// vocabulary the inventory grammar is defined over.
//
// The conversion is delegated to a CommonMark parser extended with an
// inline rule that recognizes [[#Name]] as a distinct hoist-reference
// node. Single newlines act as soft line breaks: a line break inside
// a list item separates text runs instead of joining them.
//
// The vocabulary is closed: List, ListItem, Heading (level 1), Link,
// HoistRef and Text. Any construct in the input that does not map
// onto it fails the conversion with ErrUnsupportedMarkup.
package markup
