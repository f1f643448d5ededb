// Package client is the HTTP side of the chat client.
//
// # Overview
//
// The package provides:
//  1. Facade: BuildURL and BuildAuthHeaders, the only place request URLs and
//     headers are composed.
//  2. The Client interface: one method per backend operation (login, channel
//     listing/lookup/creation/update, membership, user lookup, profile
//     update).
//  3. HTTPClient, the net/http implementation. It JSON-encodes bodies, tags
//     each request with an X-Request-Id, optionally throttles outbound calls
//     with a token bucket, and decodes JSON replies.
//
// # Error Handling
//
// Nothing is swallowed. Failures are returned wrapped around one of the
// sentinels below, so callers match them with errors.Is:
//
//   - ErrNetworkFailure: the request never produced a response.
//   - ErrHTTPStatus: the server answered non-2xx (see *StatusError; 401 and
//     403 also match ErrUnauthorized). Error bodies are never parsed as data.
//   - ErrNotFound: GetChannelByID or GetOneUserByName found no match.
//   - ErrAuthenticationFailed: Login got no usable token.
//   - ErrMalformedResponse: the body did not decode into the expected shape.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. There is no retry, backoff or
// in-flight deduplication; every call honours ctx cancellation and the
// configured transport timeout.
package client
