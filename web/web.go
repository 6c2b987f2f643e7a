// Package web holds the static course page served at the site root.
package web

import _ "embed"

//go:embed index.html
var indexHTML []byte

// IndexHTML returns a copy of the embedded page bytes.
func IndexHTML() []byte {
	return append([]byte(nil), indexHTML...)
}
