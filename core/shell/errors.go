package shell

import "errors"

// Parse-stage sentinel errors. Each is fatal to the single `;`-separated
// command it occurs in; commands already parsed stay valid.
var (
	// Tokenizing errors.
	ErrTrailingBackslash = errors.New("trailing backslash")
	ErrUnterminatedQuote = errors.New("unterminated quote")
	ErrUnbalancedBraces  = errors.New("unbalanced braces")
	ErrMismatchedBrace   = errors.New("mismatched brace")

	// Expansion errors.
	ErrBareDollar = errors.New("missing variable name after $")

	// Glob errors.
	ErrNoMatches = errors.New("no matches for pattern")

	// Classification errors.
	ErrMissingCommand        = errors.New("missing command")
	ErrMissingRedirectTarget = errors.New("missing redirect target")
	ErrAmbiguousRedirect     = errors.New("ambiguous redirect target")
	ErrGroupedOptionValue    = errors.New("cannot assign a value to grouped short options")
)
