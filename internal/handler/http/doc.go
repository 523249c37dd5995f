// Package http implements the REST transport of the service.
//
// It wires the chi router, the request-scoped middleware (trace id, access
// log, panic recovery, CORS, credential pre-check) and the auth gate in front
// of the profile endpoint. Handlers decode JSON, call the auth service and map
// its errors to statuses with a JSON {"message": ...} body.
package http
