package adocutil

import "strings"

// Directive splits a line of the form "name::target[args]" into its three
// parts. ok is false if the line doesn't have that shape (no "::" before a
// "[...]" suffix). This is the shared shape behind include::, ifdef::,
// ifndef::, and endif:: directive lines.
func Directive(line string) (name, target, args string, ok bool) {
	line = strings.TrimRight(line, "\r\n")
	sep := strings.Index(line, "::")
	if sep < 0 {
		return "", "", "", false
	}
	name, rest := line[:sep], line[sep+2:]
	if name == "" {
		return "", "", "", false
	}
	open := strings.IndexByte(rest, '[')
	if open < 0 || rest[len(rest)-1] != ']' {
		return "", "", "", false
	}
	target = rest[:open]
	args = rest[open+1 : len(rest)-1]
	return name, target, args, true
}
