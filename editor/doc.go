// Package editor provides a Bubble Tea code-editing component backed by the
// buffer and highlight packages.
//
// The component stacks two surfaces that share one set of box metrics. The
// input surface owns the caret, the selection and the scroll offsets; its
// glyphs are never drawn. The display surface draws the highlighted text and
// copies the input surface's offsets after every scroll. A line-number gutter
// follows the input surface vertically.
package editor
