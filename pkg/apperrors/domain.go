package apperrors

import (
	"net/http"
)

// Predefined errors for the auth and user domains. The login failure
// messages keep the unknown-email and wrong-password cases
// distinguishable; clients depend on the exact copy.

// ErrUserNotExists is returned by login when the email is unknown.
var ErrUserNotExists = New(
	CodeInvalidCredentials,
	"auth",
	"User does not exist",
	http.StatusBadRequest,
)

// ErrInvalidPassword is returned by login on a hash mismatch.
var ErrInvalidPassword = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid password",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists is returned by signup on a duplicate email.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User already exists",
	http.StatusBadRequest,
)

// ErrPasswordMismatch is returned by signup when the confirmation differs.
var ErrPasswordMismatch = New(
	CodeValidationFailed,
	"auth",
	"Passwords do not match",
	http.StatusBadRequest,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeValidationFailed,
	"auth",
	"Role must be either student or professor",
	http.StatusBadRequest,
)

// ErrInvalidToken covers expired, tampered and malformed tokens alike.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusBadRequest,
)

var ErrNotAuthenticated = New(
	CodeUnauthorized,
	"auth",
	"Not authenticated",
	http.StatusUnauthorized,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// ErrProfileNotFound is returned when a user's role-profile row is
// missing.
var ErrProfileNotFound = New(
	CodeNotFound,
	"user",
	"Profile not found",
	http.StatusNotFound,
)

// ErrServerMisconfigured signals a missing token secret.
var ErrServerMisconfigured = New(
	CodeMisconfiguration,
	"system",
	"Server configuration error",
	http.StatusInternalServerError,
)
