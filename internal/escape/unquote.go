// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents, and a
// surrogate pair of Unicode escapes is combined into a single rune. Invalid
// escapes are replaced by the Unicode replacement rune. Unquote reports an
// error for an incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		dec = mem.Append(dec, src)
		return dec, nil
	}

	putByte := func(bs ...byte) { dec = append(dec, bs...) }
	putRune := func(r rune) { dec = utf8.AppendRune(dec, r) }
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		// Decode the next rune after the escape to figure out what to
		// substitute. There should not be errors here, but if there are, insert
		// replacement runes (utf8.RuneError == '\ufffd').
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			putByte(byte(r))
		case 'b':
			putByte('\b')
		case 'f':
			putByte('\f')
		case 'n':
			putByte('\n')
		case 'r':
			putByte('\r')
		case 't':
			putByte('\t')
		case 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, err := parseHex(src.SliceTo(4))
			src = src.SliceFrom(4)
			if err != nil {
				putRune(utf8.RuneError)
				break
			}
			r := rune(v)
			if isHighSurrogate(r) {
				if lo, ok := lowSurrogate(src); ok {
					r = utf16.DecodeRune(r, lo)
					src = src.SliceFrom(6)
				}
			}
			putRune(r)
		default:
			putRune(utf8.RuneError)
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// UnquotePrefix decodes the longest prefix of src that does not end inside an
// escape sequence, a surrogate pair, or a multi-byte UTF-8 sequence. The
// input is the body of a string whose closing quote has not been seen.
func UnquotePrefix(src mem.RO) []byte {
	dec, err := Unquote(src.SliceTo(completePrefix(src)))
	if err != nil {
		// The prefix contains no incomplete escapes.
		panic(err)
	}
	return dec
}

// completePrefix returns the length of the longest decodable prefix of src.
func completePrefix(src mem.RO) int {
	n := runePrefix(src)
	end := n
	hi := -1 // start of a high surrogate escape ending at i, or -1
	for i := 0; i < n; {
		if src.At(i) != '\\' {
			i++
			hi = -1
			continue
		}
		if i+1 == n || (src.At(i+1) == 'u' && i+6 > n) {
			end = i
			break
		}
		if src.At(i+1) != 'u' {
			i += 2
			hi = -1
			continue
		}
		start := i
		i += 6
		if v, err := parseHex(src.SliceFrom(start + 2).SliceTo(4)); err == nil && isHighSurrogate(rune(v)) {
			hi = start
		} else {
			hi = -1
		}
	}
	if hi >= 0 {
		// A high surrogate whose partner may be in the next chunk.
		end = hi
	}
	return end
}

// runePrefix returns the length of src without a trailing incomplete UTF-8
// sequence.
func runePrefix(src mem.RO) int {
	n := src.Len()
	j := n - 1
	for j > 0 && j > n-utf8.UTFMax && !utf8.RuneStart(src.At(j)) {
		j--
	}
	if j >= 0 && !utf8.FullRune(mem.Append(nil, src.SliceFrom(j))) {
		return j
	}
	return n
}

func isHighSurrogate(r rune) bool { return r >= 0xd800 && r < 0xdc00 }

// lowSurrogate reports whether src begins with a \u escape for a low
// surrogate, and if so returns its value.
func lowSurrogate(src mem.RO) (rune, bool) {
	if src.Len() < 6 || src.At(0) != '\\' || src.At(1) != 'u' {
		return 0, false
	}
	v, err := parseHex(src.SliceFrom(2).SliceTo(4))
	if err != nil || v < 0xdc00 || v > 0xdfff {
		return 0, false
	}
	return rune(v), true
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
