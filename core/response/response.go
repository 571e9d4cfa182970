package response

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/formcatalog/core/handler"
)

// Render runs resp against the context. A response that fails before the
// handler chain can see the error is answered with a bare 500.
func Render(ctx handler.Context, resp handler.Response) {
	if err := resp(ctx.ResponseWriter(), ctx.Request()); err != nil {
		http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
	}
}

// Error hands err to the router's error handler.
func Error(err error) handler.Response {
	return func(http.ResponseWriter, *http.Request) error { return err }
}

// Status writes an empty body. Zero means 200.
func Status(code int) handler.Response {
	return func(w http.ResponseWriter, _ *http.Request) error {
		w.WriteHeader(orOK(code))
		return nil
	}
}

func NoContent() handler.Response { return Status(http.StatusNoContent) }

func String(content string) handler.Response {
	return StringWithStatus(content, http.StatusOK)
}

func StringWithStatus(content string, status int) handler.Response {
	return func(w http.ResponseWriter, _ *http.Request) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(orOK(status))
		if content == "" {
			return nil
		}
		_, err := io.WriteString(w, content)
		return err
	}
}

func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus encodes v without HTML escaping, so labels such as
// "Food & Staples" come out verbatim. A zero status means 200, or 204 when
// v is nil.
func JSONWithStatus(v any, status int) handler.Response {
	return func(w http.ResponseWriter, _ *http.Request) error {
		if status == 0 && v == nil {
			status = http.StatusNoContent
		}
		status = orOK(status)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		if status == http.StatusNoContent || status == http.StatusNotModified {
			return nil
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	}
}

// WriterFunc renders a body into w.
type WriterFunc func(w io.Writer) error

// Write buffers the body produced by fn before sending anything, so a
// rendering error still reaches the error handler with a clean response.
// A non-empty filename marks the body as an attachment.
func Write(contentType, filename string, fn WriterFunc) handler.Response {
	return func(w http.ResponseWriter, _ *http.Request) error {
		var buf bytes.Buffer
		if err := fn(&buf); err != nil {
			return err
		}

		h := w.Header()
		h.Set("Content-Type", contentType)
		h.Set("Content-Length", strconv.Itoa(buf.Len()))
		if filename != "" {
			h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
		}
		w.WriteHeader(http.StatusOK)
		_, err := buf.WriteTo(w)
		return err
	}
}

func orOK(code int) int {
	if code == 0 {
		return http.StatusOK
	}
	return code
}
