// Package errors provides structured error codes for the seed command.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unclassified error.
	CodeUnknown Code = "UNKNOWN"

	// Session errors
	CodeCredentialInvalid Code = "CREDENTIAL_INVALID"
	CodeBackendUnknown    Code = "BACKEND_UNKNOWN"

	// Store write errors
	CodeStoreUnavailable      Code = "STORE_UNAVAILABLE"
	CodeStoreWriteFailed      Code = "STORE_WRITE_FAILED"
	CodeStorePermissionDenied Code = "STORE_PERMISSION_DENIED"
	CodeStoreQuotaExceeded    Code = "STORE_QUOTA_EXCEEDED"

	// Fixture errors
	CodeFixtureInvalid Code = "FIXTURE_INVALID"
)

// codeForGRPC maps a store status code onto the write-failure taxonomy.
func codeForGRPC(c codes.Code) Code {
	switch c {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return CodeStoreUnavailable
	case codes.PermissionDenied:
		return CodeStorePermissionDenied
	case codes.Unauthenticated:
		return CodeCredentialInvalid
	case codes.ResourceExhausted:
		return CodeStoreQuotaExceeded
	default:
		return CodeStoreWriteFailed
	}
}
