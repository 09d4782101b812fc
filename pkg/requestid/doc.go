// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header or generates a uuid v4,
// stores the id in the request context and echoes it back. LoggerExtractor
// plugs into logger.WithContextExtractors so every log record written with
// the request context carries "request_id", which is how error envelopes
// logged by the handler package are tied to their request.
package requestid
