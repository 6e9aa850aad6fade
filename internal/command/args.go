// Package command implements the firecrawl command: it validates the
// invocation, fetches the page through Firecrawl, and assembles a labeled
// text block for the host to display.
package command

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/firecrawl-cmd/pkg/firecrawl"
)

// Name is the only command this package handles.
const Name = "firecrawl"

var (
	// ErrUnknownCommand is returned when the host dispatches a command other than Name.
	ErrUnknownCommand = eris.New("unknown command")
	// ErrMissingArgument is returned when no arguments are given.
	ErrMissingArgument = eris.New("specify [scrape|crawl] and where to scrape")
	// ErrUnsupportedScheme is returned when the single argument is not an http(s) URL.
	ErrUnsupportedScheme = eris.New("invalid verb/URL; only http/https are supported")
	// ErrTooManyArguments is returned for more than one argument.
	ErrTooManyArguments = eris.New("unexpected arguments; expected a single URL")
)

// Invocation is a validated command: which verb to run against which URL.
type Invocation struct {
	Verb firecrawl.Verb
	URL  string
}

// ParseArgs validates the command name and its arguments. A lone argument
// starting with "http" is scraped; the URL is passed through untouched.
func ParseArgs(name string, args []string) (Invocation, error) {
	if name != Name {
		return Invocation{}, eris.Wrapf(ErrUnknownCommand, "command %q", name)
	}

	switch {
	case len(args) == 0:
		return Invocation{}, ErrMissingArgument
	case len(args) == 1 && strings.HasPrefix(args[0], "http"):
		return Invocation{Verb: firecrawl.VerbScrape, URL: args[0]}, nil
	case len(args) == 1:
		return Invocation{}, eris.Wrapf(ErrUnsupportedScheme, "argument %q", args[0])
	default:
		return Invocation{}, eris.Wrapf(ErrTooManyArguments, "got %d arguments", len(args))
	}
}
