package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fleece-index/hamt/hamt"
)

func TestLoadPairs_SkipsMalformedAndNonIntegerLines(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("a 1\nbad-line\nb not-a-number\nc 3\n")
	tr := hamt.New[string, int](hamt.NewStringHasher())

	count, err := loadPairs(in, tr, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, tr.Count())

	val, ok := tr.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, val)

	val, ok = tr.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, val)
}

func TestLoadPairs_EmptyInput(t *testing.T) {
	t.Parallel()

	tr := hamt.New[string, int](hamt.NewStringHasher())
	count, err := loadPairs(strings.NewReader(""), tr, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, tr.Count())
}

func TestRunDump_ProducesNonEmptyDump(t *testing.T) {
	t.Parallel()

	quiet = true
	inputPath = ""

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("x 10\ny 20\n"))

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "HAMT {")
}
