package utf8

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	stdlib "unicode/utf8"

	segAscii "github.com/segmentio/asm/ascii"
	"github.com/stretchr/testify/assert"
)

var someutf8 = []byte("\xF4\x8F\xBF\xBF")

type byteRange struct {
	Low  byte
	High byte
}

func one(b byte) byteRange {
	return byteRange{b, b}
}

func genExamples(current string, ranges []byteRange) []string {
	if len(ranges) == 0 {
		return []string{current}
	}
	r := ranges[0]
	var all []string

	elements := []byte{r.Low, r.High}

	mid := (r.High + r.Low) / 2
	if mid != r.Low && mid != r.High {
		elements = append(elements, mid)
	}

	for _, x := range elements {
		s := current + string(x)
		all = append(all, genExamples(s, ranges[1:])...)
		if x == r.High {
			break
		}
	}
	return all
}

func TestValid(t *testing.T) {
	var examples = []string{
		"",
		"a",
		"abc",
		"Ж",
		"ЖЖ",
		"брэд-ЛГТМ",
		"☺☻☹",

		// overlong
		"\xE0\x80",
		// unfinished continuation
		"aa\xE2",

		string([]byte{66, 250}),
		string([]byte{66, 250, 67}),

		"a�b",

		"\xF4\x8F\xBF\xBF", // U+10FFFF
		"\xF4\x90\x80\x80", // U+10FFFF+1; out of range
		"\xF7\xBF\xBF\xBF", // 0x1FFFFF; out of range

		"\xc0\x80",     // U+0000 encoded in two bytes: incorrect
		"\xed\xa0\x80", // U+D800 high surrogate (sic)
		"\xed\xbf\xbf", // U+DFFF low surrogate (sic)

		// valid at boundary
		strings.Repeat("a", 32+28) + "☺☻☹",
		strings.Repeat("a", 32+31) + "☺☻☹",
		// invalid at boundary
		strings.Repeat("a", 32+31) + "\xE2a",
		strings.Repeat("a", 14) + "☺" + strings.Repeat("a", 13) + "\xE2",

		"wowie_this_is_a_string",
		"résumé",
		"Family: 👨‍👩‍👧",
	}

	ascii := byteRange{0, 0x7F}
	cont := byteRange{0x80, 0xBF}

	rangesToTest := [][]byteRange{
		{one(0x20), ascii, ascii, ascii},

		{one(0xC2)},
		{one(0xC2), ascii},
		{one(0xC2), cont},
		{one(0xC2), {0xC0, 0xFF}},

		{one(0xE1), cont},
		{one(0xE1), cont, cont},
		{one(0xE1), cont, ascii},

		{one(0xF1), cont, cont},
		{one(0xF1), cont, cont, cont},
		{one(0xF1), cont, cont, cont, ascii},

		{one(0xE0), {0x0, 0x9F}, cont},
		{one(0xE0), {0xA0, 0xBF}, cont},
	}

	for _, r := range rangesToTest {
		examples = append(examples, genExamples("", r)...)
	}

	for _, i := range []int{300, 316} {
		d := bytes.Repeat(someutf8, i/len(someutf8))
		examples = append(examples, string(d))
	}

	for _, tt := range examples {
		t.Run(tt, func(t *testing.T) {
			expected := stdlib.ValidString(tt)
			assert.Equal(t, expected, ValidString(tt))
			assert.Equal(t, expected, Valid([]byte(tt)))
		})
	}
}

func TestIndexMask(t *testing.T) {
	for i := 1; i < 2048; i++ {
		data := make([]byte, i)
		for j := range data {
			data[j] = byte(rand.Uint32() & 0x7f)
		}
		assert.Equal(t, -1, indexMask(data, 0x80))
		assert.True(t, segAscii.Valid(data))

		idx := rand.Intn(i)
		data[idx] |= 0x80
		assert.Equal(t, idx, indexMask(string(data), 0x80), "len %d", i)
		assert.False(t, segAscii.ValidString(string(data)))
	}
}

// Every position of the first flagged byte, inside and after the word loop.
func TestIndexMaskPositions(t *testing.T) {
	for n := 1; n <= 40; n++ {
		for pos := 0; pos < n; pos++ {
			data := bytes.Repeat([]byte{'a'}, n)
			data[pos] = 0xC3
			if pos+1 < n {
				data[pos+1] = 0xFF
			}
			assert.Equal(t, pos, indexMask(data, 0x80), "len %d pos %d", n, pos)
			assert.Equal(t, pos, indexMask(string(data), 0x80), "len %d pos %d", n, pos)
		}
		assert.Equal(t, -1, indexMask(strings.Repeat("A", n), 0x20), "len %d", n)
		assert.Equal(t, 0, indexMask(strings.Repeat("a", n), 0x20), "len %d", n)
	}
}

var longStringJapanese = strings.Repeat("日本語日本語日本語日", 100_000/30)

func BenchmarkValidStringLongJapanese(b *testing.B) {
	b.Run("std", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			stdlib.ValidString(longStringJapanese)
		}
	})

	b.Run("simd", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ValidString(longStringJapanese)
		}
	})
}
