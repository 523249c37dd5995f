// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration names no transport address, so no handler is initialized.
var errNoHandlersAreCreated = errors.New("no handlers are created")
