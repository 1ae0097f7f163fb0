// Package common contains constants and sentinel errors shared by the
// schoolplatform client, the account daemon and the CLI.
package common

// Storage keys of the account core. The registry key holds the JSON array
// of every registered user; the session key holds the snapshot of the user
// that is currently signed in and is absent for anonymous clients.
const (
	UsersKey       = "school-platform-users"
	CurrentUserKey = "school-platform-current-user"
)

// Trailer keys used by the account daemon to carry the failure
// discriminant of an operation next to the gRPC status.
const (
	ErrorKindTrailer = "error-kind"
	ErrorOpTrailer   = "error-op"
)
