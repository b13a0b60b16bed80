// Package frontend serves the single-page client next to the JSON API.
package frontend

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sbilibin2017/gw-career-consult/internal/logger"
)

const indexFile = "index.html"

// ErrIndexNotFound is returned when the build directory lacks index.html.
var ErrIndexNotFound = errors.New("frontend build not found")

// NewStaticHandler serves files from dir. Paths that match no file fall back to
// index.html so the client-side router can resolve them.
func NewStaticHandler(dir string) (http.Handler, error) {
	index := filepath.Join(dir, indexFile)
	if info, err := os.Stat(index); err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: could not find %s, make sure to build the client first", ErrIndexNotFound, index)
	}

	root := os.DirFS(dir)
	files := http.FileServer(http.Dir(dir))

	logger.Log.Infow("serving static frontend", "dir", dir)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name != "" {
			if info, err := fs.Stat(root, name); err == nil && !info.IsDir() {
				files.ServeHTTP(w, r)
				return
			}
		}
		serveIndex(w, r, index)
	}), nil
}

func serveIndex(w http.ResponseWriter, r *http.Request, index string) {
	f, err := os.Open(index)
	if err != nil {
		logger.Log.Errorw("failed to open frontend index", "path", index, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.ServeContent(w, r, indexFile, info.ModTime(), f)
}
