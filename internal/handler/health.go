package handler

import (
	"bytes"
	"context"

	"github.com/pkordes/ride-logbook/backend/internal/handler/gen"
	"github.com/pkordes/ride-logbook/backend/spec"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(_ context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}

// GetOpenAPI serves the embedded OpenAPI document.
func (s *Server) GetOpenAPI(_ context.Context, _ gen.GetOpenAPIRequestObject) (gen.GetOpenAPIResponseObject, error) {
	return gen.GetOpenAPI200ApplicationyamlResponse{
		Body:          bytes.NewReader(spec.OpenAPI),
		ContentLength: int64(len(spec.OpenAPI)),
	}, nil
}
