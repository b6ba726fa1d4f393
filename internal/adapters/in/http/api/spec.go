// Package api holds the HTTP contract: the embedded OpenAPI document, the
// request and response bodies it describes and the echo routing wrapper that
// binds path parameters before calling a ServerInterface.
package api

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// GetSwagger parses and validates the embedded document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}

	if err = swagger.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return swagger, nil
}

// SpecJSON renders the embedded document as JSON for the swagger UI.
func SpecJSON() ([]byte, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	return json.Marshal(swagger)
}
