// Package openapi renders an OpenAPI 3.0 document from the routes registered
// on an echo instance.
package openapi

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// Resource describes one REST collection, e.g. "/customers" and
// "/customers/:id".
type Resource struct {
	Name string
	Path string
	// Properties is the JSON schema of a stored record.
	Properties map[string]any
	// Required lists the fields a create request must carry.
	Required []string
	// Filter is the optional integer query parameter of the list route.
	Filter string
}

// Generator builds the document. Routes that belong to no resource are
// skipped.
type Generator struct {
	title     string
	version   string
	resources []Resource
}

func NewGenerator(title, version string, resources ...Resource) *Generator {
	return &Generator{title: title, version: version, resources: resources}
}

// GenerateSpec produces the OpenAPI document for routes.
func (g *Generator) GenerateSpec(routes []*echo.Route) map[string]any {
	paths := make(map[string]map[string]any)
	for _, r := range routes {
		res, item, ok := g.match(r.Path)
		if !ok {
			continue
		}
		op := g.operation(res, item, r.Method)
		if op == nil {
			continue
		}
		p := toOpenAPIPath(r.Path)
		if paths[p] == nil {
			paths[p] = make(map[string]any)
		}
		paths[p][strings.ToLower(r.Method)] = op
	}

	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   g.title,
			"version": g.version,
		},
		"paths": paths,
		"components": map[string]any{
			"schemas": g.schemas(),
		},
	}
}

// match finds the resource owning path and whether path addresses one item.
func (g *Generator) match(path string) (Resource, bool, bool) {
	for _, res := range g.resources {
		switch path {
		case res.Path:
			return res, false, true
		case res.Path + "/:id":
			return res, true, true
		}
	}
	return Resource{}, false, false
}

func (g *Generator) operation(res Resource, item bool, method string) map[string]any {
	op := map[string]any{"tags": []string{res.Name}}
	var params []map[string]any
	if item {
		params = append(params, idParam("path", "id", true))
	}

	switch {
	case !item && method == http.MethodGet:
		op["summary"] = "List " + res.Name + " records"
		op["operationId"] = "list" + res.Name
		if res.Filter != "" {
			params = append(params, idParam("query", res.Filter, false))
		}
		op["responses"] = responses(http.StatusOK, "Records", map[string]any{
			"type":  "array",
			"items": ref(res.Name),
		})
	case !item && method == http.MethodPost:
		op["summary"] = "Create a " + res.Name
		op["operationId"] = "create" + res.Name
		op["requestBody"] = body(ref(res.Name + "Create"))
		op["responses"] = responses(http.StatusCreated, "Created", ref("Ack"))
	case item && method == http.MethodGet:
		op["summary"] = "Read a " + res.Name
		op["operationId"] = "get" + res.Name
		op["responses"] = responses(http.StatusOK, res.Name, ref(res.Name))
	case item && method == http.MethodPut:
		op["summary"] = "Update a " + res.Name
		op["operationId"] = "update" + res.Name
		op["requestBody"] = body(ref(res.Name + "Update"))
		op["responses"] = responses(http.StatusOK, "Updated", ref("Ack"))
	case item && method == http.MethodDelete:
		op["summary"] = "Delete a " + res.Name
		op["operationId"] = "delete" + res.Name
		op["responses"] = responses(http.StatusOK, "Deleted", ref("Ack"))
	default:
		return nil
	}

	if len(params) > 0 {
		op["parameters"] = params
	}
	return op
}

func (g *Generator) schemas() map[string]any {
	schemas := map[string]any{
		"Ack": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"message":         map[string]any{"type": "string"},
				"id":              map[string]any{"type": "integer", "format": "int64"},
				"prescription_id": map[string]any{"type": "integer", "format": "int64"},
			},
		},
		"Error": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"error":      map[string]any{"type": "string"},
				"kind":       map[string]any{"type": "string"},
				"request_id": map[string]any{"type": "string"},
			},
		},
	}

	for _, res := range g.resources {
		schemas[res.Name] = map[string]any{"type": "object", "properties": res.Properties}

		writable := make(map[string]any, len(res.Properties))
		for name, prop := range res.Properties {
			if name != "id" {
				writable[name] = prop
			}
		}
		required := append([]string(nil), res.Required...)
		sort.Strings(required)
		schemas[res.Name+"Create"] = map[string]any{"type": "object", "properties": writable, "required": required}
		schemas[res.Name+"Update"] = map[string]any{"type": "object", "properties": writable}
	}
	return schemas
}

func idParam(in, name string, required bool) map[string]any {
	return map[string]any{
		"name":     name,
		"in":       in,
		"required": required,
		"schema":   map[string]any{"type": "integer", "format": "int64", "minimum": 1},
	}
}

func ref(name string) map[string]any {
	return map[string]any{"$ref": "#/components/schemas/" + name}
}

func body(schema map[string]any) map[string]any {
	return map[string]any{
		"required": true,
		"content":  map[string]any{echo.MIMEApplicationJSON: map[string]any{"schema": schema}},
	}
}

func responses(status int, description string, schema map[string]any) map[string]any {
	errResp := map[string]any{
		"description": "Error",
		"content":     map[string]any{echo.MIMEApplicationJSON: map[string]any{"schema": ref("Error")}},
	}
	return map[string]any{
		strconv.Itoa(status): map[string]any{
			"description": description,
			"content":     map[string]any{echo.MIMEApplicationJSON: map[string]any{"schema": schema}},
		},
		"default": errResp,
	}
}

// toOpenAPIPath rewrites echo's ":param" segments as "{param}".
func toOpenAPIPath(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if strings.HasPrefix(p, ":") {
			parts[i] = "{" + p[1:] + "}"
		}
	}
	return strings.Join(parts, "/")
}

// RegisterRoutes serves the document for every route registered on e at
// request time.
func (g *Generator) RegisterRoutes(e *echo.Echo) {
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, g.GenerateSpec(e.Routes()))
	})
}
