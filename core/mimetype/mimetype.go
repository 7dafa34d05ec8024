package mimetype

import (
	"io"
	"log/slog"
)

// DefaultType is returned for extensions the table does not cover.
const DefaultType = "text/plain"

// types maps file extensions, without the leading dot, to content types.
// Lookups are case-sensitive: "PNG" is not "png". The table is fixed at
// compile time and covers the common text, image, audio, video, archive,
// and font formats.
var types = map[string]string{
	// Text
	"css":    "text/css",
	"csv":    "text/csv",
	"htm":    "text/html",
	"html":   "text/html",
	"ics":    "text/calendar",
	"js":     "text/javascript",
	"mjs":    "text/javascript",
	"txt":    "text/plain",
	"xml":    "application/xml",
	"xhtml":  "application/xhtml+xml",
	"json":   "application/json",
	"jsonld": "application/ld+json",
	"rtf":    "application/rtf",

	// Images
	"avif": "image/avif",
	"bmp":  "image/bmp",
	"gif":  "image/gif",
	"ico":  "image/vnd.microsoft.icon",
	"jpeg": "image/jpeg",
	"jpg":  "image/jpeg",
	"png":  "image/png",
	"svg":  "image/svg+xml",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
	"webp": "image/webp",

	// Audio
	"aac":  "audio/aac",
	"mid":  "audio/midi",
	"midi": "audio/midi",
	"mp3":  "audio/mpeg",
	"oga":  "audio/ogg",
	"opus": "audio/opus",
	"wav":  "audio/wav",
	"weba": "audio/webm",

	// Video
	"avi":  "video/x-msvideo",
	"mp4":  "video/mp4",
	"mpeg": "video/mpeg",
	"ogv":  "video/ogg",
	"ts":   "video/mp2t",
	"webm": "video/webm",
	"3gp":  "video/3gpp",
	"3g2":  "video/3gpp2",

	// Archives
	"bz":  "application/x-bzip",
	"bz2": "application/x-bzip2",
	"gz":  "application/gzip",
	"jar": "application/java-archive",
	"rar": "application/vnd.rar",
	"tar": "application/x-tar",
	"zip": "application/zip",
	"7z":  "application/x-7z-compressed",

	// Fonts
	"eot":   "application/vnd.ms-fontobject",
	"otf":   "font/otf",
	"ttf":   "font/ttf",
	"woff":  "font/woff",
	"woff2": "font/woff2",

	// Documents
	"abw":  "application/x-abiword",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"epub": "application/epub+zip",
	"odp":  "application/vnd.oasis.opendocument.presentation",
	"ods":  "application/vnd.oasis.opendocument.spreadsheet",
	"odt":  "application/vnd.oasis.opendocument.text",
	"pdf":  "application/pdf",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",

	// Misc
	"bin":  "application/octet-stream",
	"ogx":  "application/ogg",
	"php":  "application/x-httpd-php",
	"sh":   "application/x-sh",
	"csh":  "application/x-csh",
	"wasm": "application/wasm",
}

// Lookup returns the content type for the extension and whether the table
// covers it. The extension is given without the leading dot.
func Lookup(ext string) (string, bool) {
	ct, ok := types[ext]
	return ct, ok
}

// Resolver resolves extensions to content types, logging a diagnostic for
// extensions the table does not cover. The zero-value logger discards
// everything; wire a real one with WithLogger to surface the notices.
type Resolver struct {
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for unknown-extension notices.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a resolver with the given options.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the content type for the extension, falling back to
// DefaultType for anything the table does not cover. Unknown non-empty
// extensions are logged; a missing extension falls back silently since
// there is nothing to name.
func (r *Resolver) Resolve(ext string) string {
	if ct, ok := types[ext]; ok {
		return ct
	}
	if ext != "" {
		r.logger.Warn("unknown file extension, using default content type",
			"extension", ext,
			"default", DefaultType,
		)
	}
	return DefaultType
}
