// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Bearer header parsing failures. Both are answered with 401.
var (
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is missing")
	ErrInvalidAuthorizationHeader = errors.New("authorization header carries no token")
)
