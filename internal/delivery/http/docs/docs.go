// Package docs serves the API documentation: the OpenAPI document is kept as
// two embedded fragments (the root surface and the admin sub-application) and
// merged into one document on first request.
package docs

import (
	"embed"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed openapi/root.json openapi/admin.json
var specFS embed.FS

var (
	mergeOnce sync.Once
	merged    []byte
	mergeErr  error
)

// MergedSchema returns the combined OpenAPI document: the admin fragment's
// paths and components are folded into the root document.
func MergedSchema() ([]byte, error) {
	mergeOnce.Do(func() {
		merged, mergeErr = mergeSchemas()
	})

	return merged, mergeErr
}

func mergeSchemas() ([]byte, error) {
	root, err := loadFragment("openapi/root.json")
	if err != nil {
		return nil, err
	}

	admin, err := loadFragment("openapi/admin.json")
	if err != nil {
		return nil, err
	}

	paths, ok := root["paths"].(map[string]any)
	if !ok {
		paths = map[string]any{}
	}
	if adminPaths, ok := admin["paths"].(map[string]any); ok {
		for route, spec := range adminPaths {
			paths[route] = spec
		}
	}
	root["paths"] = paths

	components, ok := root["components"].(map[string]any)
	if !ok {
		components = map[string]any{}
	}
	if adminComponents, ok := admin["components"].(map[string]any); ok {
		for key, value := range adminComponents {
			components[key] = value
		}
	}
	root["components"] = components

	out, err := json.Marshal(root)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal merged openapi schema")
	}

	return out, nil
}

func loadFragment(name string) (map[string]any, error) {
	raw, err := specFS.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read openapi fragment %s", name)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse openapi fragment %s", name)
	}

	return doc, nil
}

// Register mounts the documentation endpoints.
func Register(e *echo.Echo) {
	e.GET("/openapi.json", func(c echo.Context) error {
		schema, err := MergedSchema()
		if err != nil {
			return err
		}

		return c.JSONBlob(http.StatusOK, schema)
	})

	e.GET("/docs", func(c echo.Context) error {
		return c.HTML(http.StatusOK, swaggerUIPage)
	})
}

// swaggerUIPage renders Swagger UI against the merged document.
const swaggerUIPage = `<!DOCTYPE html>
<html>
<head>
    <title>Laundry Management API Docs</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
        SwaggerUIBundle({
            url: "/openapi.json",
            dom_id: "#swagger-ui",
            presets: [SwaggerUIBundle.presets.apis],
            layout: "BaseLayout",
            deepLinking: true
        });
    </script>
</body>
</html>`
