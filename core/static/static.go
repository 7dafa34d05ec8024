package static

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/junctionio/junction/core/handler"
	"github.com/junctionio/junction/core/mimetype"
	"github.com/junctionio/junction/core/response"
	"github.com/junctionio/junction/core/router"
)

// asset is one discovered file: the route it binds to, the bytes captured at
// bind time, and the resolved content type.
type asset struct {
	route       string
	data        []byte
	contentType string
}

type config struct {
	resolver *mimetype.Resolver
	logger   *slog.Logger
}

// Option configures static binding.
type Option func(*config)

// WithResolver sets the content-type resolver used for discovered files.
// By default a silent resolver is used; pass one built with
// mimetype.WithLogger to surface unknown-extension notices.
func WithResolver(r *mimetype.Resolver) Option {
	return func(c *config) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithLogger sets the logger for binding progress (one debug line per bound
// route).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts ...Option) *config {
	c := &config{
		resolver: mimetype.NewResolver(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Bind walks the directory tree rooted at dir and registers a GET route for
// every file found, with the file's contents captured eagerly at bind time.
// Route paths are derived from each file's position in the tree joined under
// prefix, always with forward slashes. A file named exactly "index.html"
// binds to its parent directory's route instead of keeping its filename.
//
// Registration order follows directory discovery order. Conflicts with
// already registered routes surface as *router.DuplicateBindingError,
// returned unchanged; routes registered before the conflict stay registered.
// Unreadable directories or files abort the walk with a
// *DirectoryReadError.
func Bind[C handler.Context](rt router.Router[C], dir, prefix string, opts ...Option) error {
	info, err := os.Stat(dir)
	if err != nil {
		return &DirectoryReadError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return &DirectoryReadError{Path: dir, Err: errNotDirectory}
	}
	return BindFS(rt, os.DirFS(dir), prefix, opts...)
}

// BindFS is Bind over any fs.FS, most usefully an embed.FS compiled into the
// binary. Binding semantics are identical to Bind.
func BindFS[C handler.Context](rt router.Router[C], fsys fs.FS, prefix string, opts ...Option) error {
	cfg := newConfig(opts...)

	assets, err := collect(fsys, ".", path.Join("/", prefix), cfg)
	if err != nil {
		return err
	}

	for _, a := range assets {
		data, contentType := a.data, a.contentType
		h := func(ctx C) (*handler.Payload, error) {
			return response.Bytes(data, contentType), nil
		}
		if err := rt.Register(router.MethodGet, a.route, h); err != nil {
			return err
		}
		cfg.logger.Debug("bound static route",
			"route", a.route,
			"content_type", a.contentType,
			"size", len(a.data),
		)
	}
	return nil
}

// collect recursively gathers all files under dir into assets. It reads each
// file once, resolves its content type from the extension after the last
// dot, and derives the route from routeBase plus the filename, folding
// index.html into routeBase itself.
func collect(fsys fs.FS, dir, routeBase string, cfg *config) ([]asset, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, &DirectoryReadError{Path: dir, Err: err}
	}

	var assets []asset
	for _, entry := range entries {
		name := entry.Name()
		fsPath := path.Join(dir, name)

		if entry.IsDir() {
			sub, err := collect(fsys, fsPath, path.Join(routeBase, name), cfg)
			if err != nil {
				return nil, err
			}
			assets = append(assets, sub...)
			continue
		}

		data, err := fs.ReadFile(fsys, fsPath)
		if err != nil {
			return nil, &DirectoryReadError{Path: fsPath, Err: err}
		}

		route := path.Join(routeBase, name)
		if name == "index.html" {
			route = routeBase
		}

		assets = append(assets, asset{
			route:       route,
			data:        data,
			contentType: cfg.resolver.Resolve(extension(name)),
		})
	}
	return assets, nil
}

// extension returns the part of name after the last dot, or "" when there is
// no dot. "archive.tar.gz" yields "gz"; ".env" yields "env".
func extension(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return ""
}
