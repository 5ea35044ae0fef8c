// Package highlight turns source text into highlighted markup.
//
// A language Profile is an ordered list of regular-expression rules. Rules are
// applied to the raw text in declaration order; a match that overlaps a range
// claimed by an earlier rule is discarded, so earlier rules win. The resulting
// spans are rendered as escaped HTML with one
// <span class="token CLASS"> element per span.
//
// Offsets in Span are rune offsets, matching package buffer.
package highlight
