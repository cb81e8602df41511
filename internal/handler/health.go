package handler

import (
	"bytes"
	"context"

	"github.com/pkordes/parkslot-booking/backend/internal/handler/gen"
	"github.com/pkordes/parkslot-booking/backend/spec"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(ctx context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}

// GetOpenAPI handles GET /openapi.yaml by serving the embedded API description.
func (s *Server) GetOpenAPI(ctx context.Context, _ gen.GetOpenAPIRequestObject) (gen.GetOpenAPIResponseObject, error) {
	return gen.GetOpenAPI200ApplicationyamlResponse{
		Body:          bytes.NewReader(spec.OpenAPI),
		ContentLength: int64(len(spec.OpenAPI)),
	}, nil
}

// LoginRedirect handles GET /auth/login-redirect?return_to=.
// It answers 302 Found pointing at the login page, carrying the return path.
func (s *Server) LoginRedirect(ctx context.Context, req gen.LoginRedirectRequestObject) (gen.LoginRedirectResponseObject, error) {
	return gen.LoginRedirect302Response{
		Headers: gen.LoginRedirect302ResponseHeaders{Location: s.login.Target(deref(req.Params.ReturnTo))},
	}, nil
}
