// Package mimetype maps file extensions to content types using a fixed,
// case-sensitive table keyed without the leading dot.
//
// The standard library's mime package is deliberately not used here: its
// lookups are case-insensitive, keyed with a leading dot, and extendable at
// runtime via AddExtensionType, all of which contradict this package's
// contract of a closed, predictable table.
//
// Lookup is the pure form; Resolver adds the text/plain fallback and logs a
// diagnostic when it encounters an extension the table does not cover:
//
//	resolver := mimetype.NewResolver(mimetype.WithLogger(logger))
//	ct := resolver.Resolve("png") // "image/png"
//	ct = resolver.Resolve("xyz")  // "text/plain", logged
package mimetype
