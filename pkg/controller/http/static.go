package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/tokrecharge/migration-server/pkg/domain/types"
)

const assetsPrefix = "/assets/"

// staticHandler serves files from a directory. Page routes that do not match
// a file fall back to index.html so that client-side routing can take over;
// missing files under /assets/ stay 404.
type staticHandler struct {
	root  string
	files http.Handler
}

func newStaticHandler(root string) *staticHandler {
	return &staticHandler{
		root:  root,
		files: http.FileServer(http.Dir(root)),
	}
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name, found := h.resolve(r.URL.Path)

	switch {
	case !found && !strings.HasPrefix(r.URL.Path, assetsPrefix):
		h.serveFile(w, r, filepath.Join(h.root, types.IndexFile))

	// http.FileServer redirects .../index.html to the directory
	case strings.HasSuffix(r.URL.Path, "/"+types.IndexFile):
		h.serveFile(w, r, name)

	default:
		h.files.ServeHTTP(w, r)
	}
}

// resolve maps urlPath into the static root and reports whether it exists
func (h *staticHandler) resolve(urlPath string) (string, bool) {
	name := filepath.Join(h.root, filepath.FromSlash(path.Clean("/"+urlPath)))
	_, err := os.Stat(name)
	return name, err == nil
}

// serveFile writes a single regular file with http.ServeContent, which keeps
// content type detection and conditional/range handling but never redirects.
func (h *staticHandler) serveFile(w http.ResponseWriter, r *http.Request, name string) {
	f, err := os.Open(name)
	if err != nil {
		ctxlog.From(r.Context()).Warn("Static file unavailable", "path", name, "error", err)
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil || stat.IsDir() {
		http.NotFound(w, r)
		return
	}

	http.ServeContent(w, r, stat.Name(), stat.ModTime(), f)
}
