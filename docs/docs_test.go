package docs

import (
	"encoding/json"
	"testing"
)

func TestSwaggerDocListsRoutes(t *testing.T) {
	var doc struct {
		BasePath    string                    `json:"basePath"`
		Paths       map[string]map[string]any `json:"paths"`
		Definitions map[string]any            `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("rendered doc is not valid json: %v", err)
	}

	if doc.BasePath != "/api/v1" {
		t.Fatalf("expected base path /api/v1, got %q", doc.BasePath)
	}

	routes := []struct{ path, method string }{
		{"/auth/login", "post"},
		{"/admin/refresh", "post"},
		{"/dashboard/summary", "get"},
		{"/dashboard/releases", "get"},
		{"/dashboard/scatter", "get"},
		{"/dashboard/genre-prices", "get"},
		{"/dashboard/publishers", "get"},
		{"/dashboard/genre-trends", "get"},
		{"/dashboard/filters", "get"},
		{"/games", "get"},
		{"/genres", "get"},
	}
	for _, r := range routes {
		ops, ok := doc.Paths[r.path]
		if !ok {
			t.Fatalf("path %s missing from the doc", r.path)
		}
		if _, ok := ops[r.method]; !ok {
			t.Fatalf("path %s missing a %s operation", r.path, r.method)
		}
	}

	for _, def := range []string{"handler.SummaryResponse", "handler.ScatterResponse", "handler.ErrorResponse", "models.GenreCount"} {
		if _, ok := doc.Definitions[def]; !ok {
			t.Fatalf("definition %s missing from the doc", def)
		}
	}
}
