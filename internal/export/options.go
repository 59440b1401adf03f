package export

// Options is the immutable flag set selecting export behavior.
type Options struct {
	// Force allows overwriting or merging into an existing target directory.
	Force bool

	// KeepHash retains content-hash suffixes in copied resource filenames
	// instead of stripping them.
	KeepHash bool

	// CopySystemCSS copies the archive's own stylesheets into the target.
	CopySystemCSS bool

	// BuildIndex emits landing-page index variants for pages whose name
	// matches a sibling subfolder.
	BuildIndex bool

	// BuildAPIDocs exports the documentation folder of each archive.
	BuildAPIDocs bool

	// BuildTutorials exports the tutorials folder of each archive.
	BuildTutorials bool
}

// DefaultOptions returns the options used by a plain CLI invocation:
// everything is built, hashes are stripped.
func DefaultOptions() Options {
	return Options{
		CopySystemCSS:  true,
		BuildIndex:     true,
		BuildAPIDocs:   true,
		BuildTutorials: true,
	}
}
