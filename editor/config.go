package editor

// Config configures a new editor Model.
type Config struct {
	// Initial text for the internal buffer. Expected to use bare \n line
	// endings; LoadFile produces text in this form.
	Text string

	// FileName is where Save writes. Empty means an unnamed scratch
	// document; saving it only reports a status message.
	FileName string

	// ShowLineNums renders the line number gutter.
	ShowLineNums bool

	// OnChange, when set, is called after every observable buffer change: a
	// text mutation or a cursor move. Inputs the buffer rejects as boundary
	// no-ops do not fire it.
	OnChange func(ChangeEvent)
}
