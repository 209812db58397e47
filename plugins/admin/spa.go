package admin

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/dmitrymomot/honohub/internal"
)

const indexFile = "index.html"

func spaHandler(prefix string, assets fs.FS) http.Handler {
	files := internal.StaticHandler(assets)
	return http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name == "" || name == indexFile {
			serveIndex(w, r, assets)
			return
		}
		if info, err := fs.Stat(assets, name); err != nil || info.IsDir() {
			serveIndex(w, r, assets)
			return
		}
		files.ServeHTTP(w, r)
	}))
}

func serveIndex(w http.ResponseWriter, r *http.Request, assets fs.FS) {
	data, err := fs.ReadFile(assets, indexFile)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(data)
}
