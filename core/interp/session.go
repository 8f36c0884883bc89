// Package interp executes parsed command lines against the in-memory
// filesystem and environment. It owns the working directory, the output
// streams, and builtin dispatch.
package interp

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vshell/vsh/core/environ"
	"github.com/vshell/vsh/core/logger"
	"github.com/vshell/vsh/core/shell"
	"github.com/vshell/vsh/core/vfs"
	"github.com/vshell/vsh/core/vpath"
)

// Exit codes follow shell conventions.
const (
	ExitSuccess  = 0
	ExitFailure  = 1
	ExitSyntax   = 2
	ExitNotFound = 127
)

// CommandFunc is one builtin. It reads and writes through the session and
// returns an exit code.
type CommandFunc func(s *Session, args *shell.InputArgs) int

// Session is one interactive shell instance: environment, filesystem,
// working directory, and the builtins it can dispatch to.
type Session struct {
	ID uuid.UUID

	Env      environ.Env
	FS       *vfs.FileSystem
	Commands map[string]CommandFunc

	// Interactive reports whether output goes to a terminal. Commands use
	// it to pick human-oriented formatting such as color.
	Interactive bool

	// Exited is set by the exit builtin; the read loop stops serving the
	// session once it is true.
	Exited bool

	parser *shell.Parser
	log    zerolog.Logger
	cwd    vpath.Path

	// Effective streams for the command currently running; redirects swap
	// these out for the duration of one dispatch.
	stdout io.Writer
	stderr io.Writer

	baseStdout io.Writer
	baseStderr io.Writer
}

// NewSession builds a session rooted at the environment's home directory,
// falling back to / when the home directory is absent from the filesystem.
func NewSession(env environ.Env, fs *vfs.FileSystem, commands map[string]CommandFunc, stdout, stderr io.Writer) *Session {
	id := uuid.New()
	s := &Session{
		ID:         id,
		Env:        env,
		FS:         fs,
		Commands:   commands,
		log:        logger.Get("session").With().Str("session_id", id.String()).Logger(),
		cwd:        vpath.Root(),
		stdout:     stdout,
		stderr:     stderr,
		baseStdout: stdout,
		baseStderr: stderr,
	}
	s.parser = shell.NewParser(env, fs, s.Getwd)

	if home := env.UserHomeDir(); home != "" {
		if err := s.Chdir(vpath.New(home)); err != nil {
			s.log.Warn().Str("home", home).Msg("home directory missing, starting at /")
		}
	}
	return s
}

// Stdout returns the effective standard output for the running command.
func (s *Session) Stdout() io.Writer { return s.stdout }

// Stderr returns the effective standard error for the running command.
func (s *Session) Stderr() io.Writer { return s.stderr }

// Getwd returns the working directory.
func (s *Session) Getwd() vpath.Path { return s.cwd }

// Chdir changes the working directory, which must name an existing
// directory. The PWD variable tracks it.
func (s *Session) Chdir(p vpath.Path) error {
	node, ok := s.FS.Get(p)
	if !ok {
		return fmt.Errorf("%s: %w", p, vfs.ErrNotExist)
	}
	if _, isDir := node.(*vfs.Directory); !isDir {
		return fmt.Errorf("%s: %w", p, vfs.ErrNotDirectory)
	}
	s.cwd = p.AsDir()
	s.Env.Setenv(environ.KeyPWD, s.cwd.Display())
	return nil
}

// Resolve interprets a command argument as a path relative to the working
// directory.
func (s *Session) Resolve(arg string) vpath.Path {
	return vpath.Interpret(s.cwd, arg)
}

// Run parses and executes one input line, returning the exit code of the
// last command. When parsing fails partway, the commands parsed before the
// failure still run, then the error is reported.
func (s *Session) Run(line string) int {
	parsed, parseErr := s.parser.Parse(line)

	code := ExitSuccess
	for _, args := range parsed {
		code = s.dispatch(args)
	}

	if parseErr != nil {
		fmt.Fprintf(s.baseStderr, "vsh: %v\n", parseErr)
		return ExitSyntax
	}
	return code
}

// dispatch runs one command with its redirects applied.
func (s *Session) dispatch(args *shell.InputArgs) int {
	cmd, ok := s.Commands[args.Command]
	if !ok {
		fmt.Fprintf(s.baseStderr, "vsh: command not found: %s\n", args.Command)
		s.log.Debug().Str("command", args.Command).Msg("command not found")
		return ExitNotFound
	}

	stdout, stderr := s.baseStdout, s.baseStderr
	for stream, redir := range args.Redirects {
		mode := vfs.ModeWrite
		if redir.Append {
			mode = vfs.ModeAppend
		}

		target, err := s.FS.Open(s.Resolve(redir.Target), mode)
		if err != nil {
			fmt.Fprintf(s.baseStderr, "vsh: %v\n", err)
			return ExitFailure
		}

		switch stream {
		case 1:
			stdout = target
		case 2:
			stderr = target
		default:
			fmt.Fprintf(s.baseStderr, "vsh: %d: bad stream identifier\n", stream)
			return ExitFailure
		}
	}

	s.stdout, s.stderr = stdout, stderr
	defer func() {
		s.stdout, s.stderr = s.baseStdout, s.baseStderr
	}()

	s.log.Debug().Str("command", args.Command).Strs("args", args.Args).Msg("dispatch")
	return cmd(s, args)
}
