package logger

// Exported for white-box tests of the error chain handling.
var (
	CollectErrorEntries = collectErrorEntries
	ErrorArgs           = errorArgs
)
