// Package static populates a route table from a directory tree. It walks
// the tree once at bind time, reads every file into memory, and registers a
// GET route per file whose handler returns the captured bytes with a
// content type resolved from the file extension.
//
// # Features
//
//   - Recursive directory walk with one route registered per file
//   - File contents read eagerly at bind time and held for process lifetime
//   - index.html files bound to their parent directory's route
//   - Content types from the mimetype package's fixed extension table
//   - Support for embedded filesystems (embed.FS) via BindFS
//   - Duplicate routes rejected through the router's registration contract
//
// # Basic Usage
//
//	import (
//		"github.com/junctionio/junction/core/router"
//		"github.com/junctionio/junction/core/static"
//	)
//
//	r := router.New[*router.Context]()
//	if err := static.Bind(r, "./public", "/assets"); err != nil {
//		log.Fatal(err)
//	}
//
// A tree like
//
//	public/
//	  index.html
//	  css/site.css
//	  img/logo.png
//
// bound under "/assets" yields the routes /assets, /assets/css/site.css,
// and /assets/img/logo.png. Only index.html folds upward; every other file
// keeps its full name, extension included.
//
// # Embedded Assets
//
//	//go:embed web
//	var webFS embed.FS
//
//	sub, _ := fs.Sub(webFS, "web")
//	if err := static.BindFS(r, sub, "/"); err != nil {
//		log.Fatal(err)
//	}
//
// # Caveats
//
// Because contents are captured once, changes to files on disk after bind
// are invisible until rebind. The package suits fixed asset sets of modest
// size; it keeps every byte in memory and performs no cache revalidation.
package static
