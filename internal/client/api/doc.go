// Package api contains client-side building blocks for the storefront.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the storefront backend: Signup, Login, GetProfile, UpdateProfile,
//     and Ping.
//  2. A concrete HTTP implementation (see HTTPClient) that speaks the
//     backend's REST dialect — JSON signup, form-encoded login, and
//     Bearer-authenticated profile calls — and maps response statuses to
//     sentinel errors.
//  3. An in-process stand-in (see MockClient) backed by its own account map,
//     used in demo installations where no backend is reachable. It mirrors
//     the HTTP implementation's success and error shapes so callers cannot
//     tell the two apart.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrAlreadyExists,
// ErrValidation, ErrNotFound.
//
// Concurrency & Contexts
//
// Implementations are safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package api
