package editor

// ResetMsg replaces the document with host-supplied text, like SetText.
type ResetMsg struct {
	Text string
}

// caretRestoreMsg places the caret after a tab insertion once the new
// document has been rendered. version is the buffer version right after the
// insertion; a restore for any other version is stale.
type caretRestoreMsg struct {
	version uint64
	offset  int
}
