// Package client talks to the acquisitions HTTP API on behalf of the
// terminal client. The session token lives in a cookie jar, so the token is
// never handled by calling code.
package client
