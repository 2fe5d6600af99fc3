// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jserd

import (
	"errors"
	"strings"

	"github.com/creachadair/jserd/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// Unquote decodes a JSON string value.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}

// An Interner maintains a pool of interned strings to reduce storage for
// values with many duplicates, such as repeated object keys.  A nil Interner
// is ready for use, but does not deduplicate.
type Interner map[string]string

// Intern returns a string equal to text, reusing an existing copy of the
// string from ic if one has been seen before.
func (ic Interner) Intern(text []byte) string {
	if ic == nil {
		return string(text)
	}
	s, ok := ic[string(text)] // NB: no allocation here, the compiler elides it
	if !ok {
		s = string(text)
		ic[s] = s
	}
	return s
}
