package middleware

import (
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

// writerPool reuses brotli writers across requests.
var writerPool = sync.Pool{
	New: func() any {
		return brotli.NewWriterLevel(nil, brotli.DefaultCompression)
	},
}

type brotliWriter struct {
	gin.ResponseWriter
	bw *brotli.Writer
}

func (w *brotliWriter) Write(data []byte) (int, error) {
	return w.bw.Write(data)
}

func (w *brotliWriter) WriteString(s string) (int, error) {
	return w.bw.Write([]byte(s))
}

// Content length is unknown once the body is compressed.
func (w *brotliWriter) WriteHeader(code int) {
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(code)
}

// Brotli compresses response bodies for clients that advertise br support.
// Responses that are already encoded are passed through untouched.
func Brotli() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Accept-Encoding"), "br") {
			c.Next()
			return
		}
		if c.Writer.Header().Get("Content-Encoding") != "" {
			c.Next()
			return
		}

		bw := writerPool.Get().(*brotli.Writer)
		bw.Reset(c.Writer)
		defer func() {
			_ = bw.Close()
			writerPool.Put(bw)
		}()

		c.Header("Content-Encoding", "br")
		c.Header("Vary", "Accept-Encoding")

		c.Writer = &brotliWriter{ResponseWriter: c.Writer, bw: bw}
		c.Next()
	}
}
