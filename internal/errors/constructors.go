package errors

// Convenience constructors for the export error taxonomy.

// Usage errors

func NotEnoughArguments() *ExportError {
	return New(CategoryUsage, SeverityFatal,
		"expected one or more archive paths followed by a target directory")
}

// Pre-write fatal errors

func TargetExists(path string) *ExportError {
	return New(CategoryTarget, SeverityFatal, "target directory already exists").
		WithContext("path", path)
}

func ArchiveFormat(path string, cause error) *ExportError {
	return Wrap(cause, CategoryArchive, SeverityFatal, "expected a documentation archive").
		WithContext("path", path)
}

// Per-item non-fatal errors

func ResourceCopyFailed(file string, cause error) *ExportError {
	return Wrap(cause, CategoryResource, SeverityWarning, "resource copy failed").
		WithContext("file", file)
}

func PageRenderFailed(page string, cause error) *ExportError {
	return Wrap(cause, CategoryRender, SeverityWarning, "page render failed").
		WithContext("page", page)
}

func StylesheetWriteFailed(cause error) *ExportError {
	return Wrap(cause, CategoryStylesheet, SeverityWarning, "site stylesheet write failed")
}

// Runtime errors

func TargetWriteFailed(path string, cause error) *ExportError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "target write failed").
		WithContext("path", path)
}

func Internal(message string, cause error) *ExportError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
