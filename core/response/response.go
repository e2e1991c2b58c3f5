package response

import (
	"net/http"

	"github.com/dmitrymomot/viewkit/core/handler"
)

// ContentTypeHTML is the content type used for rendered templates.
const ContentTypeHTML = "text/html; charset=utf-8"

// HTML creates a text/html response with 200 OK status.
func HTML(content string) handler.Response {
	return HTMLWithStatus(content, http.StatusOK)
}

// HTMLWithStatus creates a text/html response with a custom status code.
func HTMLWithStatus(content string, status int) handler.Response {
	return write(ContentTypeHTML, content, status)
}

// String creates a text/plain response with 200 OK status.
func String(content string) handler.Response {
	return write("text/plain; charset=utf-8", content, http.StatusOK)
}

// Error returns a response that hands err to the router's error handler.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}

func write(contentType, content string, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", contentType)
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if content == "" {
			return nil
		}
		_, err := w.Write([]byte(content))
		return err
	}
}
