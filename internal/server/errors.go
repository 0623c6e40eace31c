// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means the configuration left nothing to listen on.
var errNoServersAreCreated = errors.New("no servers are created: http handler or address missing")
