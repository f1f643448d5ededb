package client

import (
	"net/http"

	"github.com/dmitrijs2005/gophchat/internal/common"
)

// Facade composes request URLs and headers. It is pure: the same input always
// yields the same output and nothing is validated.
type Facade struct {
	baseURL string
}

func NewFacade(baseURL string) Facade {
	return Facade{baseURL: baseURL}
}

// BaseURL returns the configured base address.
func (f Facade) BaseURL() string {
	return f.baseURL
}

// BuildURL appends endpointPath to the base address verbatim.
func (f Facade) BuildURL(endpointPath string) string {
	return f.baseURL + endpointPath
}

// BuildAuthHeaders always sets the JSON content type and adds a bearer
// Authorization header only for a non-empty token.
func (f Facade) BuildAuthHeaders(token string) http.Header {
	h := make(http.Header, 2)
	h.Set(common.ContentTypeHeader, common.ContentTypeJSON)
	if token != "" {
		h.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}
	return h
}
