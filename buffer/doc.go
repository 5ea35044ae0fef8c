// Package buffer implements the pure document model for codepad: an immutable
// Document, a rune-offset selection, and the Buffer that tracks both.
//
// Offsets are rune offsets into the Document text. Ranges are half-open:
// [Start, End). CursorPosition is 1-based; Pos is 0-based.
package buffer
