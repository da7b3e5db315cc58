// Package cli wires a single word lookup: parse options, fetch entries,
// hand them to the renderer and translate the outcome into an exit code.
package cli

import (
	"context"
	"net/url"
	"time"

	"github.com/rootdots/rich-dictionary-cli/app/clients/dictionaryapi"
	"github.com/rootdots/rich-dictionary-cli/app/render"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Opts holds command line options
type Opts struct {
	Timeout time.Duration `long:"timeout" env:"DICTIONARY_TIMEOUT" default:"5s" description:"Total time allowed for the dictionary request"`
	NoColor bool          `long:"no-color" env:"NO_COLOR" description:"Disable colored output"`
	Debug   bool          `long:"debug" description:"Enable debug logging"`
	Args    struct {
		Word string `positional-arg-name:"WORD" description:"The word to look up"`
	} `positional-args:"yes" required:"yes"`
}

// Dictionary fetches dictionary entries for a single word
type Dictionary interface {
	Get(ctx context.Context, word string) ([]dictionaryapi.WordEntry, error)
}

// Run looks the word up and renders either the result or a failure report.
// Returns the process exit code: 0 when entries were displayed, 1 otherwise.
func Run(opts Opts, dict Dictionary, out *render.Renderer) int {
	word := opts.Args.Word
	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	entries, ok := fetch(ctx, dict, word, out)
	if !ok {
		return 1
	}
	if len(entries) == 0 {
		out.UnexpectedFormat(word)
		return 1
	}
	out.Display(word, entries)
	return 0
}

// fetch calls the dictionary client and reports every failure class through
// the renderer. No error escapes it: the second return value is false once
// the failure has been shown to the user.
func fetch(ctx context.Context, dict Dictionary, word string, out *render.Renderer) ([]dictionaryapi.WordEntry, bool) {
	log.Debug().Str("word", word).Msg("fetching dictionary entries")
	entries, err := dict.Get(ctx, word)
	if err == nil {
		return entries, true
	}

	var statusErr *dictionaryapi.StatusError
	var decodeErr *dictionaryapi.DecodeError
	var netErr *url.Error
	switch {
	case errors.Is(err, dictionaryapi.ErrNotFound):
		out.NotFound(word)
	case errors.As(err, &statusErr):
		out.HTTPError(statusErr.Code)
	case errors.As(err, &decodeErr):
		out.JSONError(decodeErr.Err)
	case errors.As(err, &netErr):
		out.NetworkError(netErr)
	default:
		out.Unexpected(err)
	}
	return nil, false
}
