// Package repr renders strings the way a Starlark repr would.
package repr

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Digits of hex strings.
var hexDigits = "0123456789abcdef"

// Repr returns a quoted representation of the string.
// Single quotes are preferred, unless the string contains single quotes
// but no double quotes.
func Repr(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)

	var quote byte
	if strings.IndexByte(s, '\'') < 0 || strings.IndexByte(s, '"') >= 0 {
		quote = '\''
	} else {
		quote = '"'
	}

	b.WriteByte(quote)

	var ch rune
	for size := 0; len(s) > 0; s = s[size:] {
		ch, size = utf8.DecodeRuneInString(s)

		// Handle utf8 errors; should not happen
		if ch == utf8.RuneError {
			b.WriteString(`\x`)
			b.WriteByte(hexDigits[(s[0]>>4)&0xf])
			b.WriteByte(hexDigits[s[0]&0xf])

			size = 1
			continue
		}

		// Escape quotes and backslashes
		if ch == rune(quote) || ch == '\\' {
			b.WriteByte('\\')
			b.WriteByte(byte(ch))
			continue
		}

		switch {
		case ch == '\t':
			b.WriteString(`\t`)
		case ch == '\n':
			b.WriteString(`\n`)
		case ch == '\r':
			b.WriteString(`\r`)
		case ch < ' ' || ch == unicode.MaxASCII: // Map non-printable US ASCII to '\xhh'
			b.WriteString(`\x`)
			b.WriteByte(hexDigits[(ch>>4)&0xf])
			b.WriteByte(hexDigits[ch&0xf])
		case !unicode.IsPrint(ch): // Escape other non-printable characters
			hexEscape(&b, ch)
		default: // Copy characters as-is
			b.WriteRune(ch)
		}
	}

	b.WriteByte(quote)

	return b.String()
}

// hexEscape escapes the character to a hex sequence and writes it to the
// string builder.
func hexEscape(w *strings.Builder, ch rune) {
	w.WriteByte('\\')
	if ch <= 0xff { // Map 8-bit characters to '\xhh'
		w.WriteByte('x')
		w.WriteByte(hexDigits[(ch>>4)&0xf])
		w.WriteByte(hexDigits[ch&0xf])
	} else if ch <= 0xffff { // Map 16-bit characters to '\uxxxx'
		w.WriteByte('u')
		w.WriteByte(hexDigits[(ch>>12)&0xf])
		w.WriteByte(hexDigits[(ch>>8)&0xf])
		w.WriteByte(hexDigits[(ch>>4)&0xf])
		w.WriteByte(hexDigits[ch&0xf])
	} else { // Map 21-bit characters to '\U00xxxxxx'
		w.WriteByte('U')
		w.WriteByte(hexDigits[(ch>>28)&0xf])
		w.WriteByte(hexDigits[(ch>>24)&0xf])
		w.WriteByte(hexDigits[(ch>>20)&0xf])
		w.WriteByte(hexDigits[(ch>>16)&0xf])
		w.WriteByte(hexDigits[(ch>>12)&0xf])
		w.WriteByte(hexDigits[(ch>>8)&0xf])
		w.WriteByte(hexDigits[(ch>>4)&0xf])
		w.WriteByte(hexDigits[ch&0xf])
	}
}
