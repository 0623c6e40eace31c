// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for password hashing, JWT token generation and validation,
// HTTP response writing, HTTP client initialization, and ID generation.
package utils
