package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzip"
)

const compressLevel = 5

// withCompression gzips JSON responses for clients that accept it. The
// encoder is klauspost's gzip, pooled by chi between responses.
func withCompression() func(http.Handler) http.Handler {
	c := middleware.NewCompressor(compressLevel, "application/json")
	c.SetEncoder("gzip", func(w io.Writer, level int) io.Writer {
		gw, err := gzip.NewWriterLevel(w, level)
		if err != nil {
			return nil
		}
		return gw
	})

	return c.Handler
}
