// Package platform implements the external collaborators the UI calls
// out to. Each one touches the host: the browser, the session file or the
// bug report directory.
package platform
