// Package cli implements the interactive terminal client: a small REPL with
// register, login, whoami and logout commands backed by client.Service.
package cli
