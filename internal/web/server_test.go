package web

import (
	"encoding/json"
	"html"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sanketxmishra/folio/internal/starfield"
	"github.com/sanketxmishra/folio/internal/typewriter"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T, opts Options) *gin.Engine {
	t.Helper()
	if opts.Starfield == (starfield.Config{}) {
		opts.Starfield = starfield.DefaultConfig()
	}
	r, err := NewRouter(opts)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestIndex(t *testing.T) {
	w := get(newRouter(t, Options{}), "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"Sanket Mishra",
		`id="projects"`,
		"Data Analyst Agent",
		`data-tick="70"`,
		`data-hold="1200"`,
		"AI Engineer",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

var rolesAttr = regexp.MustCompile(`data-roles="([^"]*)"`)

func TestIndexRolesSurviveDelimiters(t *testing.T) {
	roles := []string{"Designer | Developer", `Says "hi"`, "AI Engineer"}
	w := get(newRouter(t, Options{Typewriter: typewriter.Config{Roles: roles}}), "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	m := rolesAttr.FindStringSubmatch(w.Body.String())
	if m == nil {
		t.Fatal("page has no data-roles attribute")
	}
	var got []string
	if err := json.Unmarshal([]byte(html.UnescapeString(m[1])), &got); err != nil {
		t.Fatalf("data-roles is not a JSON list: %v (%q)", err, m[1])
	}
	if !reflect.DeepEqual(got, roles) {
		t.Errorf("roles = %q, want %q", got, roles)
	}
}

func TestStarfieldSVG(t *testing.T) {
	r := newRouter(t, Options{Seed: 7})

	w := get(r, "/starfield.svg?w=320&h=200&frames=30")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "image/svg+xml") {
		t.Errorf("content type %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, `width="320" height="200"`) {
		t.Error("svg not sized from query")
	}
	if got := strings.Count(body, "<circle"); got != starfield.DefaultConfig().Stars {
		t.Errorf("circles = %d, want %d", got, starfield.DefaultConfig().Stars)
	}

	again := get(r, "/starfield.svg?w=320&h=200&frames=30")
	if again.Body.String() != body {
		t.Error("same seed produced a different snapshot")
	}
}

func TestStarfieldSVGBadQuery(t *testing.T) {
	r := newRouter(t, Options{})
	for _, q := range []string{
		"w=abc",
		"w=0",
		"h=-5",
		"w=99999",
		"frames=0",
	} {
		if w := get(r, "/starfield.svg?"+q); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", q, w.Code)
		}
	}
}

func TestHealthz(t *testing.T) {
	w := get(newRouter(t, Options{}), "/healthz")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("healthz: %d %s", w.Code, w.Body.String())
	}
}

func TestResume(t *testing.T) {
	if w := get(newRouter(t, Options{}), "/resume.pdf"); w.Code != http.StatusNotFound {
		t.Errorf("resume without file: status %d, want 404", w.Code)
	}

	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatal(err)
	}
	w := get(newRouter(t, Options{Resume: path}), "/resume.pdf")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Errorf("resume: %d %q", w.Code, w.Body.String())
	}
}

func TestNewRouterRejectsBadStarfield(t *testing.T) {
	cfg := starfield.DefaultConfig()
	cfg.Stars = -1
	if _, err := NewRouter(Options{Starfield: cfg}); err == nil {
		t.Error("expected error")
	}
}
