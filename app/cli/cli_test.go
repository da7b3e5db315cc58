package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/rootdots/rich-dictionary-cli/app/clients/dictionaryapi"
	"github.com/rootdots/rich-dictionary-cli/app/render"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDictionary struct {
	entries []dictionaryapi.WordEntry
	err     error
}

func (f fakeDictionary) Get(ctx context.Context, word string) ([]dictionaryapi.WordEntry, error) {
	return f.entries, f.err
}

func testOpts(word string) Opts {
	opts := Opts{Timeout: time.Second}
	opts.Args.Word = word
	return opts
}

func TestRun(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		dict := fakeDictionary{entries: []dictionaryapi.WordEntry{
			{
				Word: "hello",
				Meanings: []dictionaryapi.Meaning{
					{
						PartOfSpeech: "exclamation",
						Definitions:  []dictionaryapi.Definition{{Definition: "used as a greeting."}},
					},
				},
			},
		}}
		buf := &bytes.Buffer{}
		code := Run(testOpts("hello"), dict, render.New(buf))
		assert.Equal(t, 0, code)
		assert.Contains(t, buf.String(), "WORD: HELLO")
		assert.Contains(t, buf.String(), "1. used as a greeting.")
	})
	t.Run("not found", func(t *testing.T) {
		dict := fakeDictionary{err: dictionaryapi.ErrNotFound}
		buf := &bytes.Buffer{}
		code := Run(testOpts("qwertyuiop"), dict, render.New(buf))
		assert.Equal(t, 1, code)
		assert.Contains(t, buf.String(), `no definition found for "qwertyuiop"`)
	})
	t.Run("http error", func(t *testing.T) {
		dict := fakeDictionary{err: &dictionaryapi.StatusError{Code: 500}}
		buf := &bytes.Buffer{}
		code := Run(testOpts("hello"), dict, render.New(buf))
		assert.Equal(t, 1, code)
		assert.Contains(t, buf.String(), "HTTP error 500: could not fetch data")
	})
	t.Run("network error", func(t *testing.T) {
		netErr := &url.Error{Op: "Get", URL: "https://api.dictionaryapi.dev", Err: fmt.Errorf("connection refused")}
		dict := fakeDictionary{err: fmt.Errorf("fetch dictionaryapi.dev: %w", netErr)}
		buf := &bytes.Buffer{}
		code := Run(testOpts("hello"), dict, render.New(buf))
		assert.Equal(t, 1, code)
		assert.Contains(t, buf.String(), "Network error:")
		assert.Contains(t, buf.String(), "connection refused")
	})
	t.Run("json error", func(t *testing.T) {
		dict := fakeDictionary{err: &dictionaryapi.DecodeError{Err: fmt.Errorf("invalid character 'I'")}}
		buf := &bytes.Buffer{}
		code := Run(testOpts("hello"), dict, render.New(buf))
		assert.Equal(t, 1, code)
		assert.Contains(t, buf.String(), "JSON error: invalid character 'I'")
	})
	t.Run("unexpected error", func(t *testing.T) {
		dict := fakeDictionary{err: fmt.Errorf("boom")}
		buf := &bytes.Buffer{}
		code := Run(testOpts("hello"), dict, render.New(buf))
		assert.Equal(t, 1, code)
		assert.Contains(t, buf.String(), "Unexpected error: boom")
	})
	t.Run("empty entry list is an unexpected format", func(t *testing.T) {
		dict := fakeDictionary{entries: []dictionaryapi.WordEntry{}}
		buf := &bytes.Buffer{}
		code := Run(testOpts("hello"), dict, render.New(buf))
		assert.Equal(t, 1, code)
		assert.Contains(t, buf.String(), `received unexpected data format for "hello"`)
	})
	t.Run("nil entries without error is an unexpected format", func(t *testing.T) {
		dict := fakeDictionary{}
		buf := &bytes.Buffer{}
		code := Run(testOpts("hello"), dict, render.New(buf))
		assert.Equal(t, 1, code)
		assert.Contains(t, buf.String(), "received unexpected data format")
	})
}

func TestOptsParsing(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var opts Opts
		rest, err := flags.NewParser(&opts, flags.Default).ParseArgs([]string{"hello"})
		require.NoError(t, err)
		assert.Empty(t, rest)
		assert.Equal(t, "hello", opts.Args.Word)
		assert.Equal(t, 5*time.Second, opts.Timeout)
		assert.False(t, opts.Debug)
	})
	t.Run("flags", func(t *testing.T) {
		var opts Opts
		_, err := flags.NewParser(&opts, flags.Default).ParseArgs(
			[]string{"--timeout", "10s", "--no-color", "--debug", "hello"},
		)
		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, opts.Timeout)
		assert.True(t, opts.NoColor)
		assert.True(t, opts.Debug)
	})
	t.Run("word is required", func(t *testing.T) {
		var opts Opts
		_, err := flags.NewParser(&opts, flags.Default&^flags.PrintErrors).ParseArgs(nil)
		assert.Error(t, err)
	})
}
