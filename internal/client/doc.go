// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of the auth service.
//
// Commands:
//
//	register -email E -password P [-role R] [-lang L]
//	login    -email E -password P [-copy]
//	profile  -token T
//	whoami   -email E -password P   (login, then profile with the new token)
//
// Results are printed to stdout as styled text, or as JSON when the App is
// built WithJSONOutput. Diagnostics go to the logger.
package client
