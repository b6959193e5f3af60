package rebuild

import "unicode/utf8"

// specialBytes contains 16 * 8 = 128 bits, where each bit represents one
// byte value. If the i-th bit is 1, the i-th byte character is a
// metacharacter that needs to be escaped.
// This array represents the bytes of "()[]{}?*+|^$\\.".
var specialBytes = [16]byte{
	0x00, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00,
	0x04, 0x04, 0x04, 0xa4, 0xa0, 0xa0, 0x24, 0x08,
}

// special reports whether byte b needs to be escaped by escapeMeta.
func special(b byte) bool {
	return b < utf8.RuneSelf && specialBytes[b%16]&(1<<(b/16)) != 0
}

// escapeMeta returns a string that escapes all regular expression
// metacharacters inside the argument text; the returned fragment matches
// the literal text. The escaped set is the one the RE2 syntax treats as
// syntax outside of character classes: "()[]{}?*+|^$\\.".
func escapeMeta(s string) string {
	// A byte loop is correct because all metacharacters are ASCII.
	var i int
	for i = 0; i < len(s); i++ {
		if special(s[i]) {
			break
		}
	}

	// No metacharacters found, so return the original string.
	if i >= len(s) {
		return s
	}

	b := make([]byte, 2*len(s)-i)
	copy(b, s[:i])
	j := i
	for ; i < len(s); i++ {
		if special(s[i]) {
			b[j] = '\\'
			j++
		}
		b[j] = s[i]
		j++
	}

	return string(b[:j])
}
