// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the project hub.
//
// Each subcommand maps onto one call of the hub adapter and prints the
// server's answer as indented JSON.
package client
