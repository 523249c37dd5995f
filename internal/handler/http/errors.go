// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Client-facing messages. Details stay in the logs.
const (
	msgCredentialsRequired = "email and password are required"
	msgInvalidJSON         = "invalid JSON body"
	msgInvalidData         = "invalid data provided"
	msgEmailRegistered     = "email already registered"
	msgInvalidCredentials  = "invalid credentials"
	msgTokenNotProvided    = "token not provided"
	msgInvalidTokenFormat  = "invalid token format"
	msgInvalidToken        = "invalid or expired token"
	msgNotFound            = "Not Found"
	msgMethodNotAllowed    = "Method Not Allowed"
	msgInternalError       = "Internal Server Error"
)

// ErrNoEmailInContext is logged when a protected handler runs without the
// email the auth gate stores in the request context.
var ErrNoEmailInContext = errors.New("no authenticated email in request context")

// maxBodyBytes caps register and login bodies.
const maxBodyBytes = 1 << 20
