package textenc

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// Decode converts raw file bytes to a string, guessing the source encoding.
// It never fails: when nothing matches, the bytes are decoded as Latin-1,
// which accepts every byte value.
//
// Candidates are tried in a fixed order and scored for garbage. A candidate
// is accepted when at most 1% of its runes are U+FFFD replacement characters
// and, for the GB candidates, when at most 10% of a leading sample falls
// outside both printable ASCII and the common CJK ranges. If no candidate
// passes, a byte-pattern scorer breaks the tie between UTF-8 and GB18030.
func Decode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	if s, ok := tryUTF8(data); ok {
		return s
	}
	for _, enc := range []encoding.Encoding{simplifiedchinese.GB18030, simplifiedchinese.GBK} {
		if s, ok := tryGB(enc, data); ok {
			return s
		}
	}

	if scoreUTF8Bytes(data) {
		if s, err := unicode.UTF8.NewDecoder().String(string(data)); err == nil {
			return s
		}
	} else {
		if s, err := simplifiedchinese.GB18030.NewDecoder().String(string(data)); err == nil {
			return s
		}
	}

	// Total fallback: every byte maps to some rune.
	s, _ := charmap.ISO8859_1.NewDecoder().String(string(data))
	return s
}

const (
	sampleRunes = 1000
	sampleBytes = 1000
)

func tryUTF8(data []byte) (string, bool) {
	s, err := unicode.UTF8.NewDecoder().String(string(data))
	if err != nil {
		return "", false
	}
	if replacementRatio(s) > 0.01 {
		return "", false
	}
	return s, true
}

func tryGB(enc encoding.Encoding, data []byte) (string, bool) {
	s, err := enc.NewDecoder().String(string(data))
	if err != nil {
		return "", false
	}
	if replacementRatio(s) > 0.01 {
		return "", false
	}
	if outOfScriptRatio(s) > 0.10 {
		return "", false
	}
	return s, true
}

func replacementRatio(s string) float64 {
	total := 0
	bad := 0
	for _, r := range s {
		total++
		if r == utf8.RuneError {
			bad++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(bad) / float64(total)
}

// outOfScriptRatio samples the first 1000 runes and reports the fraction
// that is neither printable ASCII nor in the common Chinese-text ranges.
func outOfScriptRatio(s string) float64 {
	total := 0
	out := 0
	for _, r := range s {
		if total >= sampleRunes {
			break
		}
		total++
		if inScript(r) {
			continue
		}
		out++
	}
	if total == 0 {
		return 0
	}
	return float64(out) / float64(total)
}

func inScript(r rune) bool {
	switch {
	case r == '\n' || r == '\r' || r == '\t':
		return true
	case r >= 0x20 && r <= 0x7E: // printable ASCII
		return true
	case r >= 0x3000 && r <= 0x303F: // CJK punctuation
		return true
	case r >= 0x4E00 && r <= 0x9FFF: // CJK unified ideographs
		return true
	case r >= 0xFF00 && r <= 0xFFEF: // fullwidth forms
		return true
	}
	return false
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// scoreUTF8Bytes inspects raw bytes and reports whether they look more like
// UTF-8 than GB18030. A BOM decides outright. Otherwise confirmed UTF-8
// multi-byte sequences are walked whole (their continuation bytes are not
// re-scored) and tallied against high bytes in the GB lead range.
func scoreUTF8Bytes(data []byte) bool {
	if bytes.HasPrefix(data, utf8BOM) {
		return true
	}

	n := len(data)
	if n > sampleBytes {
		n = sampleBytes
	}

	utf8Score := 0
	gbScore := 0
	for i := 0; i < n; {
		b := data[i]
		if b < 0x80 {
			i++
			continue
		}

		seq := utf8SeqLen(b)
		if seq > 1 && i+seq <= len(data) && continuationsOK(data[i+1:i+seq]) {
			utf8Score += seq
			i += seq
			continue
		}

		if b >= 0x81 && b <= 0xFE {
			gbScore++
			// GB lead bytes pair with a trail byte; skip it.
			i += 2
			continue
		}
		i++
	}
	return utf8Score > gbScore
}

func utf8SeqLen(lead byte) int {
	switch {
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	}
	return 1
}

func continuationsOK(bs []byte) bool {
	for _, b := range bs {
		if b&0xC0 != 0x80 {
			return false
		}
	}
	return true
}
