package model

// UnknownEndpointMessage is returned for any /api/ path without a route
const UnknownEndpointMessage = "Migration API endpoint"

// UnknownEndpoint is the body returned for unrouted /api/ paths
type UnknownEndpoint struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}

// NewUnknownEndpoint creates the response for an unrouted API path
func NewUnknownEndpoint(path string) *UnknownEndpoint {
	return &UnknownEndpoint{
		Error: UnknownEndpointMessage,
		Path:  path,
	}
}
