package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
)

func TestSPAFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"index.html": {Data: []byte("<html>app</html>")},
		"app.js":     {Data: []byte("console.log('hi')")},
	}
	srv := http.FileServer(&spaFileSystem{root: http.FS(fsys)})

	tests := []struct {
		path string
		want string
	}{
		{"/app.js", "console.log('hi')"},
		{"/", "<html>app</html>"},
		{"/some/client/route", "<html>app</html>"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		body, _ := io.ReadAll(rec.Body)
		if string(body) != tt.want {
			t.Errorf("%s: body = %q, want %q", tt.path, body, tt.want)
		}
	}
}
