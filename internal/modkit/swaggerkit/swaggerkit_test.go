package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "fiscaliza/internal/platform/net/http"
	"fiscaliza/internal/platform/testkit"
)

func serve(t *testing.T) map[string]any {
	t.Helper()
	root := phttp.NewRouter()
	Mount(root, true)
	rr := httptest.NewRecorder()
	root.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	testkit.MustStatus(t, rr, http.StatusOK)
	var spec map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return spec
}

func TestDocJSON_LiftsAndDecorates(t *testing.T) {
	testkit.Swap(t, &docReader, func() string {
		return `{"swagger":"2.0","info":{"title":"t","version":"1"},"paths":{"/x":{"get":{"responses":{"200":{"description":"ok"}}}}}}`
	})
	spec := serve(t)
	if spec["openapi"] != "3.0.3" || spec["swagger"] != nil {
		t.Fatalf("version not lifted: %v", spec["openapi"])
	}
	servers := spec["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}
	resps := spec["paths"].(map[string]any)["/x"].(map[string]any)["get"].(map[string]any)["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "500"} {
		if _, ok := resps[code]; !ok {
			t.Fatalf("missing %s in %v", code, resps)
		}
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatalf("missing ErrorResponse")
	}
}

func TestDocJSON_Mutators(t *testing.T) {
	saved := mutators
	t.Cleanup(func() { mutators = saved })
	Register(func(s map[string]any) { s["x-fiscaliza"] = true })
	Register(nil)

	if spec := serve(t); spec["x-fiscaliza"] != true {
		t.Fatalf("mutator not applied")
	}
}

func TestDocJSON_BadDoc(t *testing.T) {
	testkit.Swap(t, &docReader, func() string { return "{" })
	root := phttp.NewRouter()
	Mount(root, true)
	rr := httptest.NewRecorder()
	root.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	testkit.MustStatus(t, rr, http.StatusInternalServerError)
}

func TestMount_Disabled(t *testing.T) {
	root := phttp.NewRouter()
	Mount(root, false)
	rr := httptest.NewRecorder()
	root.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	testkit.MustStatus(t, rr, http.StatusNotFound)
}
