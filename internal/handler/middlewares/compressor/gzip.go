package compressor

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
)

const (
	encodingGzip     = "gzip"
	encodingIdentity = "identity"
)

var (
	writerPool = sync.Pool{
		New: func() interface{} {
			return gzip.NewWriter(io.Discard)
		},
	}

	readerPool = sync.Pool{
		New: func() interface{} {
			return new(gzip.Reader)
		},
	}
)

// HTTPGzipAdapter сжимает JSON-ответы и распаковывает gzip-запросы
type HTTPGzipAdapter struct{}

func NewHTTPGzipAdapter() *HTTPGzipAdapter {
	return &HTTPGzipAdapter{}
}

// UnwrapRequest пустой Content-Encoding и identity пропускаются как есть
func (g *HTTPGzipAdapter) UnwrapRequest(r *http.Request) error {
	encoding := strings.TrimSpace(r.Header.Get("Content-Encoding"))
	switch {
	case encoding == "" || strings.EqualFold(encoding, encodingIdentity):
		return nil
	case !strings.EqualFold(encoding, encodingGzip):
		return fmt.Errorf("%w: %q", ErrUnsupportedEncoding, encoding)
	}

	zr := readerPool.Get().(*gzip.Reader)
	if err := zr.Reset(r.Body); err != nil {
		readerPool.Put(zr)
		return fmt.Errorf("%w: %v", ErrCorruptBody, err)
	}

	r.Body = &gzipBody{body: r.Body, zr: zr}
	r.Header.Del("Content-Encoding")
	r.ContentLength = -1
	return nil
}

func (g *HTTPGzipAdapter) WrapResponse(w http.ResponseWriter, r *http.Request) http.ResponseWriter {
	if !hasToken(r.Header.Get("Accept-Encoding"), encodingGzip) {
		return w
	}
	return &gzipWriter{ResponseWriter: w}
}

// gzipWriter решает, сжимать ли ответ, при записи заголовка:
// сжимаются только успешные ответы без собственного Content-Encoding
type gzipWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (c *gzipWriter) WriteHeader(status int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true

	h := c.Header()
	if status >= http.StatusOK && status < http.StatusMultipleChoices && h.Get("Content-Encoding") == "" {
		h.Set("Content-Encoding", encodingGzip)
		h.Add("Vary", "Accept-Encoding")
		h.Del("Content-Length")

		c.zw = writerPool.Get().(*gzip.Writer)
		c.zw.Reset(c.ResponseWriter)
	}
	c.ResponseWriter.WriteHeader(status)
}

func (c *gzipWriter) Write(p []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}
	if c.zw == nil {
		return c.ResponseWriter.Write(p)
	}
	return c.zw.Write(p)
}

func (c *gzipWriter) Close() error {
	if c.zw == nil {
		return nil
	}
	err := c.zw.Close()
	c.zw.Reset(io.Discard)
	writerPool.Put(c.zw)
	c.zw = nil
	return err
}

type gzipBody struct {
	body io.ReadCloser
	zr   *gzip.Reader
}

func (b *gzipBody) Read(p []byte) (int, error) {
	return b.zr.Read(p)
}

func (b *gzipBody) Close() error {
	var zerr error
	if b.zr != nil {
		zerr = b.zr.Close()
		readerPool.Put(b.zr)
		b.zr = nil
	}

	berr := b.body.Close()
	if zerr != nil {
		return zerr
	}
	return berr
}

// hasToken ищет значение в заголовке вида "gzip, deflate;q=0.5"
func hasToken(header, token string) bool {
	for _, part := range strings.Split(header, ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.EqualFold(strings.TrimSpace(name), token) {
			return true
		}
	}
	return false
}
