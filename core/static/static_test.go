package static_test

import (
	"bytes"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junctionio/junction/core/handler"
	"github.com/junctionio/junction/core/mimetype"
	"github.com/junctionio/junction/core/response"
	"github.com/junctionio/junction/core/router"
	"github.com/junctionio/junction/core/static"
)

func stubHandler(body string) handler.HandlerFunc[*router.Context] {
	return func(ctx *router.Context) (*handler.Payload, error) {
		return response.String(body), nil
	}
}

func serve(t *testing.T, rt router.Router[*router.Context], method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	rt.ServeHTTP(w, req)
	return w
}

// failingFS injects an Open error for a single path, leaving everything else
// to the wrapped filesystem.
type failingFS struct {
	inner fs.FS
	fail  string
}

func (f failingFS) Open(name string) (fs.File, error) {
	if name == f.fail {
		return nil, fs.ErrPermission
	}
	return f.inner.Open(name)
}

func TestBindServesDirectoryTree(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "index.html"), []byte("<html>Home</html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "about.html"), []byte("<html>About</html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "data.json"), []byte(`{"ok":true}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "archive.tar.gz"), []byte("gzdata"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes"), []byte("plain notes"), 0644))

	cssDir := filepath.Join(tmpDir, "css")
	require.NoError(t, os.Mkdir(cssDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cssDir, "site.css"), []byte("body { color: blue; }"), 0644))

	imgDir := filepath.Join(tmpDir, "img")
	require.NoError(t, os.Mkdir(imgDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(imgDir, "logo.png"), []byte{0x89, 'P', 'N', 'G'}, 0644))

	r := router.New[*router.Context]()
	require.NoError(t, static.Bind(r, tmpDir, "/assets"))

	tests := []struct {
		name       string
		method     string
		urlPath    string
		wantStatus int
		wantBody   string
		wantType   string
	}{
		{
			name:       "index_folds_to_prefix",
			method:     http.MethodGet,
			urlPath:    "/assets",
			wantStatus: http.StatusOK,
			wantBody:   "<html>Home</html>",
			wantType:   "text/html",
		},
		{
			name:       "html_file_keeps_name",
			method:     http.MethodGet,
			urlPath:    "/assets/about.html",
			wantStatus: http.StatusOK,
			wantBody:   "<html>About</html>",
			wantType:   "text/html",
		},
		{
			name:       "json_file",
			method:     http.MethodGet,
			urlPath:    "/assets/data.json",
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true}`,
			wantType:   "application/json",
		},
		{
			name:       "nested_css_file",
			method:     http.MethodGet,
			urlPath:    "/assets/css/site.css",
			wantStatus: http.StatusOK,
			wantBody:   "body { color: blue; }",
			wantType:   "text/css",
		},
		{
			name:       "nested_image_keeps_extension",
			method:     http.MethodGet,
			urlPath:    "/assets/img/logo.png",
			wantStatus: http.StatusOK,
			wantBody:   "\x89PNG",
			wantType:   "image/png",
		},
		{
			name:       "extension_is_last_dot_segment",
			method:     http.MethodGet,
			urlPath:    "/assets/archive.tar.gz",
			wantStatus: http.StatusOK,
			wantBody:   "gzdata",
			wantType:   "application/gzip",
		},
		{
			name:       "file_without_extension_defaults_to_plain",
			method:     http.MethodGet,
			urlPath:    "/assets/notes",
			wantStatus: http.StatusOK,
			wantBody:   "plain notes",
			wantType:   "text/plain",
		},
		{
			name:       "index_filename_is_not_a_route",
			method:     http.MethodGet,
			urlPath:    "/assets/index.html",
			wantStatus: http.StatusNotFound,
			wantBody:   "Cannot get /assets/index.html",
		},
		{
			name:       "directory_without_index_is_not_a_route",
			method:     http.MethodGet,
			urlPath:    "/assets/css",
			wantStatus: http.StatusNotFound,
			wantBody:   "Cannot get /assets/css",
		},
		{
			name:       "bindings_are_get_only",
			method:     http.MethodPost,
			urlPath:    "/assets/about.html",
			wantStatus: http.StatusNotFound,
			wantBody:   "Cannot post /assets/about.html",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := serve(t, r, tt.method, tt.urlPath)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, w.Header().Get("Content-Type"))
			}
		})
	}
}

func TestBindFoldsNestedIndexFiles(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "index.html"), []byte("root"), 0644))

	docsDir := filepath.Join(tmpDir, "docs")
	require.NoError(t, os.Mkdir(docsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "index.html"), []byte("docs"), 0644))

	r := router.New[*router.Context]()
	require.NoError(t, static.Bind(r, tmpDir, "/site"))

	w := serve(t, r, http.MethodGet, "/site")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "root", w.Body.String())

	w = serve(t, r, http.MethodGet, "/site/docs")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "docs", w.Body.String())

	// Folding replaces the filename route, it does not add an alias.
	w = serve(t, r, http.MethodGet, "/site/docs/index.html")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBindPrefixNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		prefix    string
		indexPath string
		filePath  string
	}{
		{
			name:      "empty_prefix_binds_at_root",
			prefix:    "",
			indexPath: "/",
			filePath:  "/about.html",
		},
		{
			name:      "missing_leading_slash_added",
			prefix:    "assets",
			indexPath: "/assets",
			filePath:  "/assets/about.html",
		},
		{
			name:      "trailing_slash_dropped",
			prefix:    "/assets/",
			indexPath: "/assets",
			filePath:  "/assets/about.html",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "index.html"), []byte("home"), 0644))
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "about.html"), []byte("about"), 0644))

			r := router.New[*router.Context]()
			require.NoError(t, static.Bind(r, tmpDir, tt.prefix))

			w := serve(t, r, http.MethodGet, tt.indexPath)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "home", w.Body.String())

			w = serve(t, r, http.MethodGet, tt.filePath)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "about", w.Body.String())
		})
	}
}

func TestBindCapturesContentsAtBindTime(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	mutable := filepath.Join(tmpDir, "live.txt")
	doomed := filepath.Join(tmpDir, "gone.txt")
	require.NoError(t, os.WriteFile(mutable, []byte("first version"), 0644))
	require.NoError(t, os.WriteFile(doomed, []byte("still here"), 0644))

	r := router.New[*router.Context]()
	require.NoError(t, static.Bind(r, tmpDir, "/files"))

	require.NoError(t, os.WriteFile(mutable, []byte("second version"), 0644))
	require.NoError(t, os.Remove(doomed))

	w := serve(t, r, http.MethodGet, "/files/live.txt")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "first version", w.Body.String())

	w = serve(t, r, http.MethodGet, "/files/gone.txt")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "still here", w.Body.String())
}

func TestBindMissingDirectory(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope")

	r := router.New[*router.Context]()
	err := static.Bind(r, missing, "/assets")

	require.Error(t, err)
	assert.ErrorIs(t, err, static.ErrDirectoryRead)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var readErr *static.DirectoryReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, missing, readErr.Path)
}

func TestBindPathIsNotDirectory(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("content"), 0644))

	r := router.New[*router.Context]()
	err := static.Bind(r, file, "/assets")

	require.Error(t, err)
	assert.ErrorIs(t, err, static.ErrDirectoryRead)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestBindDuplicateRoute(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "aaa.txt"), []byte("aaa"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "app.css"), []byte("css"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "zzz.txt"), []byte("zzz"), 0644))

	tests := []struct {
		name         string
		register     func(r router.Router[*router.Context])
		wantExisting router.Method
	}{
		{
			name: "conflicts_with_registered_get",
			register: func(r router.Router[*router.Context]) {
				r.Get("/assets/app.css", stubHandler("taken"))
			},
			wantExisting: router.MethodGet,
		},
		{
			name: "conflicts_with_registered_any",
			register: func(r router.Router[*router.Context]) {
				r.Any("/assets/app.css", stubHandler("taken"))
			},
			wantExisting: router.MethodAny,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := router.New[*router.Context]()
			tt.register(r)

			err := static.Bind(r, tmpDir, "/assets")
			require.Error(t, err)
			assert.ErrorIs(t, err, router.ErrDuplicateBinding)

			var dup *router.DuplicateBindingError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, "/assets/app.css", dup.Path)
			assert.Equal(t, router.MethodGet, dup.Method)
			assert.Equal(t, tt.wantExisting, dup.Existing)

			// Files discovered before the conflict stay bound, later ones
			// were never reached.
			w := serve(t, r, http.MethodGet, "/assets/aaa.txt")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "aaa", w.Body.String())

			w = serve(t, r, http.MethodGet, "/assets/zzz.txt")
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestBindCoexistsWithOtherMethods(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "app.css"), []byte("css"), 0644))

	r := router.New[*router.Context]()
	r.Post("/assets/app.css", stubHandler("posted"))

	require.NoError(t, static.Bind(r, tmpDir, "/assets"))

	w := serve(t, r, http.MethodGet, "/assets/app.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "css", w.Body.String())

	w = serve(t, r, http.MethodPost, "/assets/app.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "posted", w.Body.String())
}

func TestBindFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"index.html":  &fstest.MapFile{Data: []byte("<html>Embedded</html>")},
		"js/app.js":   &fstest.MapFile{Data: []byte("console.log('hi');")},
		"a/b/c.txt":   &fstest.MapFile{Data: []byte("deep")},
		"favicon.ico": &fstest.MapFile{Data: []byte("icon")},
	}

	r := router.New[*router.Context]()
	require.NoError(t, static.BindFS(r, fsys, "/"))

	tests := []struct {
		name     string
		urlPath  string
		wantBody string
		wantType string
	}{
		{"root_index", "/", "<html>Embedded</html>", "text/html"},
		{"javascript", "/js/app.js", "console.log('hi');", "text/javascript"},
		{"deeply_nested", "/a/b/c.txt", "deep", "text/plain"},
		{"favicon", "/favicon.ico", "icon", "image/vnd.microsoft.icon"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := serve(t, r, http.MethodGet, tt.urlPath)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
			assert.Equal(t, tt.wantType, w.Header().Get("Content-Type"))
		})
	}
}

func TestBindFSUnreadableFile(t *testing.T) {
	t.Parallel()

	fsys := failingFS{
		inner: fstest.MapFS{
			"img/logo.png": &fstest.MapFile{Data: []byte("png")},
		},
		fail: "img/logo.png",
	}

	r := router.New[*router.Context]()
	err := static.BindFS(r, fsys, "/assets")

	require.Error(t, err)
	assert.ErrorIs(t, err, static.ErrDirectoryRead)
	assert.ErrorIs(t, err, fs.ErrPermission)

	var readErr *static.DirectoryReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, "img/logo.png", readErr.Path)
}

func TestBindFSUnreadableRoot(t *testing.T) {
	t.Parallel()

	fsys := failingFS{
		inner: fstest.MapFS{},
		fail:  ".",
	}

	r := router.New[*router.Context]()
	err := static.BindFS(r, fsys, "/")

	require.Error(t, err)
	assert.ErrorIs(t, err, static.ErrDirectoryRead)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestBindUnknownExtensionIsNotFatal(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "data.xyz"), []byte("mystery"), 0644))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	resolver := mimetype.NewResolver(mimetype.WithLogger(logger))

	r := router.New[*router.Context]()
	require.NoError(t, static.Bind(r, tmpDir, "/assets", static.WithResolver(resolver)))

	w := serve(t, r, http.MethodGet, "/assets/data.xyz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mystery", w.Body.String())
	assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))

	assert.Contains(t, buf.String(), "unknown file extension")
	assert.Contains(t, buf.String(), "extension=xyz")
}

func TestBindLogsBoundRoutes(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "app.css"), []byte("css"), 0644))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := router.New[*router.Context]()
	require.NoError(t, static.Bind(r, tmpDir, "/assets", static.WithLogger(logger)))

	assert.Contains(t, buf.String(), "bound static route")
	assert.Contains(t, buf.String(), "route=/assets/app.css")
	assert.Contains(t, buf.String(), "content_type=text/css")
}
