// Package errs defines the error shapes returned to API clients.
//
// Every failure that leaves the service is an *HTTPError so clients always
// receive the same JSON envelope: a machine-readable code, a human message,
// the HTTP status, and (for request validation) the list of violated rules.
package errs
