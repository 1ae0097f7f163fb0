// Package cli provides the interactive schoolplatform command-line shell.
//
// It wires configuration, the account service (local store or a remote
// daemon) and a session.Manager, then runs a REPL with the commands
// register, login, logout, whoami, profile, passwd, help and exit.
//
// Forms are validated before the service is called, the same way the web
// pages did it: required fields, email syntax, and for passwords a minimum
// length plus a matching confirmation.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
