// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned when the configuration yields no
// listen address for the HTTP transport.
var errNoServersAreCreated = errors.New("no servers are created")
