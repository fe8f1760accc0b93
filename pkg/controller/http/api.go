package http

import (
	"net/http"

	"github.com/tokrecharge/migration-server/pkg/domain/interfaces"
	"github.com/tokrecharge/migration-server/pkg/domain/model"
)

const apiPrefix = "/api/"

// responder produces the JSON body for an API request
type responder func(r *http.Request) any

// apiRoute maps an exact API path to its responder
type apiRoute struct {
	path    string
	respond responder
}

type apiHandler struct {
	migrationUC interfaces.MigrationUseCase
}

func newAPIHandler(migrationUC interfaces.MigrationUseCase) *apiHandler {
	return &apiHandler{migrationUC: migrationUC}
}

// routes returns the exact-match route table of the migration API. Paths
// under /api/ that are not listed here are answered by unknown.
func (h *apiHandler) routes() []apiRoute {
	return []apiRoute{
		{path: "/api/health", respond: h.health},
		{path: "/api/tools", respond: h.tools},
		{path: "/api/countries", respond: h.countries},
	}
}

func (h *apiHandler) health(_ *http.Request) any {
	return h.migrationUC.Health()
}

func (h *apiHandler) tools(_ *http.Request) any {
	return h.migrationUC.Tools()
}

func (h *apiHandler) countries(_ *http.Request) any {
	return h.migrationUC.Countries()
}

// unknown answers unrouted API paths with 200 and an error-shaped body,
// matching what existing API clients of the migration server receive.
func (h *apiHandler) unknown(r *http.Request) any {
	return model.NewUnknownEndpoint(r.URL.EscapedPath())
}

// serve wraps a responder into an HTTP handler. Every API response is 200
// with a JSON body and a permissive CORS header.
func (h *apiHandler) serve(respond responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		writeJSON(w, r, http.StatusOK, respond(r))
	}
}
