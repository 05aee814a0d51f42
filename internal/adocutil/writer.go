// Package adocutil collects small, generic helpers shared by the parser
// package and its debug/inspection command: an error-latching writer and a
// splitter that pulls the name, target, and bracketed args out of
// `name::target[args]` directive lines.
package adocutil

import "io"

// ErrWriter wraps a writer, latching its first error and refusing further
// writes once one has occurred.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to the wrapped Writer while Err is nil, retaining
// any error it returns.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}
