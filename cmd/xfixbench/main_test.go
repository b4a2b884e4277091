package main

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/xfix"
)

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-sizes", "3-5", "-workers", "2", "-raw"})
	require.NoError(t, err)
	assert.Equal(t, 3, o.minPow)
	assert.Equal(t, 5, o.maxPow)
	assert.Equal(t, 2, o.workers)
	assert.True(t, o.raw)

	o, err = parseFlags([]string{"-sizes", "7"})
	require.NoError(t, err)
	assert.Equal(t, 7, o.minPow)
	assert.Equal(t, 7, o.maxPow)

	for _, bad := range []string{"x", "5-3", "0-4", "4-31", "4-y"} {
		_, err := parseFlags([]string{"-sizes", bad})
		assert.Error(t, err, "-sizes %s", bad)
	}
}

func TestGenerate(t *testing.T) {
	strs := generate(1000, 7, true)
	require.Len(t, strs, 1000)
	for _, s := range strs {
		require.True(t, strings.HasPrefix(s, common))
	}
	assert.Equal(t, strs, generate(1000, 7, true))

	for _, s := range generate(10, 7, false) {
		require.True(t, strings.HasSuffix(s, common))
	}
}

func TestRandomString(t *testing.T) {
	s := randomString(rand.New(rand.NewSource(3)), 64)
	assert.GreaterOrEqual(t, len(s), 64)
	assert.True(t, utf8.ValidString(s))
}

func TestCheckRandom(t *testing.T) {
	f, err := xfix.New(xfix.WithWorkers(2), xfix.WithThreshold(2))
	require.NoError(t, err)
	defer f.Close()

	assert.NoError(t, checkRandom(f, options{minPow: 3, checks: 16, seed: 9}))
	assert.NoError(t, checkRandom(f, options{minPow: 3}))
}

func TestRun(t *testing.T) {
	assert.Equal(t, 0, run([]string{"-sizes", "4-8", "-checks", "4"}))
	assert.Equal(t, 0, run([]string{"-sizes", "4-6", "-checks", "1", "-raw", "-workers", "2", "-threshold", "3"}))
	assert.Equal(t, 2, run([]string{"-threshold", "0"}))
	assert.Equal(t, 2, run([]string{"-sizes", "bad"}))
}
