package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/oksasatya/go-user-lookup/internal/domain/entity"
)

// Quotes are escaped too, single quotes as &#039;.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Sanitize escapes HTML-significant characters.
func Sanitize(s string) string {
	return htmlEscaper.Replace(s)
}

// Render writes one "key: value" line per profile field, in profile order.
// Each line is a single Write call.
func Render(w io.Writer, p entity.Profile) error {
	for _, f := range p {
		line := Sanitize(f.Key) + ": " + Sanitize(fmt.Sprint(f.Value)) + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
