package tracing

// Span attribute keys for backend calls.
const (
	AttrSessionID    = "playground.session.id"
	AttrRequestID    = "http.request.id"
	AttrOperation    = "playground.operation"
	AttrHTTPMethod   = "http.request.method"
	AttrHTTPPath     = "url.path"
	AttrHTTPStatus   = "http.response.status_code"
	AttrPromptPath   = "prompt.path"
	AttrPromptRef    = "prompt.ref"
	AttrCacheHit     = "cache.hit"
	AttrErrorCode    = "error.type"
	AttrErrorMessage = "error.message"
)

// SpanPrefixAPI prefixes spans for backend calls, e.g. "api.render".
const SpanPrefixAPI = "api."
