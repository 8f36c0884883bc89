package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vshell/vsh/core/environ"
	"github.com/vshell/vsh/core/vfs"
	"github.com/vshell/vsh/core/vpath"
)

// DefaultStream is the stream a bare ">" or ">>" redirects.
const DefaultStream = 1

// Redirect directs one output stream to a destination path, either
// truncating or appending.
type Redirect struct {
	Append bool
	Target string
}

// InputArgs is the executable form of one `;`-separated command.
type InputArgs struct {
	// Command is the case-folded first token.
	Command string
	// Options maps option names to values; nil marks a value-less option.
	Options map[string]*string
	// Args holds the positional arguments in original order.
	Args []string
	// Redirects maps stream identifiers to their destinations. When a
	// stream is targeted more than once the last directive wins.
	Redirects map[int]Redirect
}

// Option returns the named option's value and whether it was given.
func (ia *InputArgs) Option(name string) (string, bool) {
	val, ok := ia.Options[name]
	if !ok || val == nil {
		return "", ok
	}
	return *val, true
}

// HasOption reports whether any of the named options was given, with or
// without a value.
func (ia *InputArgs) HasOption(names ...string) bool {
	for _, name := range names {
		if _, ok := ia.Options[name]; ok {
			return true
		}
	}
	return false
}

// Parser orchestrates the pipeline: tokenize, expand each token against
// the environment, resolve globs against the filesystem at the current
// working directory, then classify into InputArgs.
type Parser struct {
	Env environ.Env
	FS  *vfs.FileSystem
	// Cwd supplies the working directory for glob resolution at parse
	// time.
	Cwd func() vpath.Path
}

// NewParser returns a parser over the given environment and filesystem.
func NewParser(env environ.Env, fs *vfs.FileSystem, cwd func() vpath.Path) *Parser {
	return &Parser{Env: env, FS: fs, Cwd: cwd}
}

func (p *Parser) cwd() vpath.Path {
	if p.Cwd == nil {
		return vpath.Root()
	}
	return p.Cwd()
}

// Parse turns a raw line into one InputArgs per `;`-separated command,
// in order. A failure in one command stops parsing but keeps the
// commands already parsed, so the caller can still act on them.
func (p *Parser) Parse(line string) ([]*InputArgs, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}

	var out []*InputArgs
	var group []Token
	finish := func() error {
		if len(group) == 0 {
			return nil
		}
		args, err := p.parseCommand(group)
		group = nil
		if err != nil {
			return err
		}
		out = append(out, args)
		return nil
	}

	for _, tok := range tokens {
		if tok.Kind == TokenSeparator {
			if err := finish(); err != nil {
				return out, err
			}
			continue
		}
		group = append(group, tok)
	}
	if err := finish(); err != nil {
		return out, err
	}
	return out, nil
}

// expandWord runs one word token through both expansion stages.
func (p *Parser) expandWord(text string) ([]string, error) {
	marked, err := Expand(text, p.Env)
	if err != nil {
		return nil, err
	}
	globber := &Globber{FS: p.FS, Cwd: p.cwd()}
	return globber.Expand(marked)
}

func (p *Parser) parseCommand(tokens []Token) (*InputArgs, error) {
	var words []string
	redirects := make(map[int]Redirect)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Kind != TokenRedirect {
			expanded, err := p.expandWord(tok.Text)
			if err != nil {
				return nil, err
			}
			words = append(words, expanded...)
			continue
		}

		stream, appendMode := splitRedirectOp(tok.Text)
		if i+1 >= len(tokens) || tokens[i+1].Kind != TokenWord {
			return nil, fmt.Errorf("%s: %w", tok.Text, ErrMissingRedirectTarget)
		}
		targets, err := p.expandWord(tokens[i+1].Text)
		if err != nil {
			return nil, err
		}
		if len(targets) != 1 {
			return nil, fmt.Errorf("%s: %w", tokens[i+1].Text, ErrAmbiguousRedirect)
		}
		redirects[stream] = Redirect{Append: appendMode, Target: targets[0]}
		i++
	}

	if len(words) == 0 {
		return nil, ErrMissingCommand
	}

	ia := &InputArgs{
		Command:   strings.ToLower(words[0]),
		Options:   make(map[string]*string),
		Redirects: redirects,
	}

	rest := words[1:]
	i := 0
	for ; i < len(rest); i++ {
		w := rest[i]
		if w == "--" {
			// Explicit end of options; consumed, not emitted.
			i++
			break
		}
		if !strings.HasPrefix(w, "-") || w == "-" {
			break
		}

		if strings.HasPrefix(w, "--") {
			name, val, hasVal := strings.Cut(w[2:], "=")
			ia.setOption(name, val, hasVal)
			continue
		}

		body := w[1:]
		if body[0] >= '0' && body[0] <= '9' {
			// A negative number, not an option.
			break
		}
		name, val, hasVal := strings.Cut(body, "=")
		switch {
		case hasVal && len([]rune(name)) == 1:
			ia.setOption(name, val, true)
		case hasVal:
			return nil, fmt.Errorf("%q: %w", w, ErrGroupedOptionValue)
		case len([]rune(body)) == 1:
			ia.setOption(body, "", false)
		default:
			for _, r := range body {
				ia.setOption(string(r), "", false)
			}
		}
	}
	ia.Args = append(ia.Args, rest[i:]...)

	return ia, nil
}

func (ia *InputArgs) setOption(name, val string, hasVal bool) {
	if !hasVal {
		ia.Options[name] = nil
		return
	}
	v := val
	ia.Options[name] = &v
}

// splitRedirectOp decomposes a fused redirect token into its stream
// identifier and append flag. The tokenizer guarantees the shape.
func splitRedirectOp(text string) (stream int, appendMode bool) {
	digits := strings.TrimRight(text, ">")
	stream = DefaultStream
	if digits != "" {
		if n, err := strconv.Atoi(digits); err == nil {
			stream = n
		}
	}
	return stream, strings.Count(text, ">") == 2
}
