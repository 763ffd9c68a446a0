package tracing

// Span attribute keys for editor tracing.
const (
	// File attributes
	AttrFilePath = "file.path"
	AttrFileSize = "file.size"

	// Buffer attributes
	AttrBufferLength = "buffer.length"
	AttrBufferLines  = "buffer.lines"
	AttrEditOffset   = "edit.offset"
	AttrEditCount    = "edit.count"

	// Highlight attributes
	AttrLanguage = "highlight.language"
	AttrTheme    = "theme.name"

	// Session attributes
	AttrSessionGUID = "session.guid"

	// Error attributes
	AttrErrorMessage = "error.message"
)

// Span names for consistent naming.
const (
	SpanFileLoad    = "file.load"
	SpanFileSave    = "file.save"
	SpanFileReload  = "file.reload"
	SpanBufferEdit  = "buffer.edit"
	SpanHighlight   = "highlight.render"
	SpanSessionLoad = "session.load"
	SpanSessionSave = "session.save"
)
