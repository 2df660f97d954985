package httpserver

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

// staticFS hides dotfiles and refuses to open directories without an
// index.html, so the file server never lists a directory.
type staticFS struct {
	root http.FileSystem
}

func (s staticFS) Open(name string) (http.File, error) {
	for _, segment := range strings.Split(name, "/") {
		if strings.HasPrefix(segment, ".") {
			return nil, fs.ErrNotExist
		}
	}

	file, err := s.root.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if !info.IsDir() {
		return file, nil
	}

	index, err := s.root.Open(path.Join(name, "index.html"))
	if err != nil {
		_ = file.Close()
		return nil, fs.ErrNotExist
	}
	_ = index.Close()

	return file, nil
}

func staticFiles(dir string) gin.HandlerFunc {
	files := http.FileServer(staticFS{root: http.Dir(dir)})

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
			return
		}

		// NoRoute handlers start out as 404; the file server sets its own
		// error statuses but not always a success one.
		c.Status(http.StatusOK)
		files.ServeHTTP(c.Writer, c.Request)
	}
}
