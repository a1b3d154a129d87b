// Package api implements the low-level HTTP client for the TranslatePlus
// API: request dispatch with retry/backoff, failure classification from
// status codes, and the concurrency gate shared by all requests issued by
// one client instance.
package api
