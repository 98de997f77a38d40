package branding

import (
	"bytes"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
)

// UserHeader names the request header a fronting proxy uses to pass the
// signed-in user's display name.
const UserHeader = "X-Forwarded-User"

// bufferedWriter holds the whole response so it can be rewritten.
type bufferedWriter struct {
	header http.Header
	status int
	buf    bytes.Buffer
}

func (b *bufferedWriter) Header() http.Header { return b.header }

func (b *bufferedWriter) WriteHeader(status int) {
	if b.status == 0 {
		b.status = status
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.buf.Write(p)
}

func isHTML(h http.Header) bool {
	mt, _, err := mime.ParseMediaType(h.Get("Content-Type"))
	return err == nil && mt == "text/html"
}

// Middleware brands successful text/html responses of next. Other responses
// pass through untouched. HTMX partial requests are not branded.
//
// The user menu is revealed for the UserHeader name only when trusted
// reports the request as coming from a proxy allowed to set that header.
func Middleware(inj *Injector, trusted func(*http.Request) bool, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("HX-Request") == "true" {
				next.ServeHTTP(w, r)
				return
			}

			bw := &bufferedWriter{header: w.Header()}
			next.ServeHTTP(bw, r)
			if bw.status == 0 {
				bw.status = http.StatusOK
			}

			body := bw.buf.Bytes()
			if bw.status == http.StatusOK && isHTML(bw.header) {
				var user string
				if u := r.Header.Get(UserHeader); u != "" {
					if trusted != nil && trusted(r) {
						user = u
					} else {
						logger.DebugContext(r.Context(), "Ignoring user header from untrusted peer", "remote_addr", r.RemoteAddr)
					}
				}
				var out bytes.Buffer
				if err := inj.BrandForUser(bytes.NewReader(body), &out, user); err != nil {
					logger.WarnContext(r.Context(), "Branding failed, serving original document", "error", err, "path", r.URL.Path)
				} else {
					body = out.Bytes()
				}
			}

			w.Header().Set("Content-Length", strconv.Itoa(len(body)))
			w.WriteHeader(bw.status)
			_, _ = w.Write(body)
		})
	}
}
