package date

import (
	"fmt"
	"strings"
)

// directives maps strftime directives to Go reference layout elements.
// Day and month map to their unpadded forms so that "1-1-2000" parses with "%d-%m-%Y".
var directives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "1",
	'd': "2",
	'b': "Jan",
	'h': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'j': "002",
	'H': "15",
	'I': "03",
	'p': "PM",
	'M': "04",
	'S': "05",
	'%': "%",
}

// Layout converts format into a Go time layout.
//
// A format containing a '%' is read as a strftime pattern, anything else is
// assumed to already be a Go reference layout and is returned unchanged.
// Literal letters and digits are rejected in a strftime pattern: Go would read
// some of them ("Jan", "PM", "06") as date fields.
func Layout(format string) (string, error) {
	if format == "" {
		return readDateFormat, nil
	}
	if !strings.Contains(format, "%") {
		return format, nil
	}
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			if isAlnum(c) {
				return "", fmt.Errorf("invalid date format %q: literal %q would be read as a date field", format, c)
			}
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(format) {
			return "", fmt.Errorf("invalid date format %q: trailing %%", format)
		}
		elem, ok := directives[format[i]]
		if !ok {
			return "", fmt.Errorf("invalid date format %q: unsupported directive %%%c", format, format[i])
		}
		b.WriteString(elem)
	}
	return b.String(), nil
}

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}
