package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(readerFromLines("  hello world  "), "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("no newline"))
	got, err := GetSimpleText(r, "p", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetSeededText_PrependsSeed(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSeededText(readerFromLines("calm and present"), "What did you observe?", "I feel ", &out)
	require.NoError(t, err)
	assert.Equal(t, "I feel calm and present", got)
	assert.Contains(t, out.String(), "I feel ")
}

func TestGetSeededText_EmptySeedIsPlainPrompt(t *testing.T) {
	got, err := GetSeededText(readerFromLines("plain"), "p", "", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "plain", got)
}

func TestGetChoice(t *testing.T) {
	options := []string{"Nature", "People", "Other"}

	t.Run("by number", func(t *testing.T) {
		got, err := GetChoice(readerFromLines("2"), "Category:", options, "Other", &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "People", got)
	})

	t.Run("by name", func(t *testing.T) {
		got, err := GetChoice(readerFromLines("Nature"), "Category:", options, "Other", &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "Nature", got)
	})

	t.Run("empty picks default", func(t *testing.T) {
		got, err := GetChoice(readerFromLines(""), "Category:", options, "Other", &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "Other", got)
	})

	t.Run("retries on invalid", func(t *testing.T) {
		var out bytes.Buffer
		got, err := GetChoice(readerFromLines("99", "3"), "Category:", options, "Other", &out)
		require.NoError(t, err)
		assert.Equal(t, "Other", got)
		assert.Contains(t, out.String(), "Please pick one of the listed options.")
	})
}
