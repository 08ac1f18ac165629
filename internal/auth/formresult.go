// Copyright (c) 2025 Identikit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

// User-facing fallback messages. Wire failures never surface raw error text
// through form results; they collapse to one of these.
const (
	// RegisterFallbackMessage is returned when registration failed without a
	// parseable validation body (network failure, malformed response).
	RegisterFallbackMessage = "An unknown error prevented registration from succeeding."
	// InvalidCredentialsMessage is returned for every login failure.
	InvalidCredentialsMessage = "Invalid email and/or password."
)

// FormResult is the outcome of a form-style operation: a success flag plus
// an ordered list of human-readable error messages, empty on success.
type FormResult struct {
	Succeeded bool
	Errors    []string
}

// succeeded is the successful FormResult.
func succeeded() FormResult { return FormResult{Succeeded: true} }

// failed builds a failure result with the given messages.
func failed(messages ...string) FormResult { return FormResult{Errors: messages} }
