package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lexlabs/muse/internal/domain"
	"github.com/lexlabs/muse/pkg/log"
)

const sessionHelp = `commands: save <word> | drop <word> | list | help | quit`

// Session is the interactive saved-words loop. Words saved here live only for
// the lifetime of the session; nothing is written to disk.
type Session struct {
	list   *domain.WordList
	in     io.Reader
	out    io.Writer
	logger log.Logger
}

// NewSession creates a session reading commands from in and writing to out.
func NewSession(in io.Reader, out io.Writer, logger log.Logger) *Session {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Session{
		list:   domain.NewWordList(),
		in:     in,
		out:    out,
		logger: logger,
	}
}

// List exposes the session's saved words.
func (s *Session) List() *domain.WordList {
	return s.list
}

// Run processes commands until quit, EOF, or context cancellation.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, sessionHelp)

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		done, msg := s.handle(scanner.Text())
		if msg != "" {
			fmt.Fprintln(s.out, msg)
		}
		if done {
			return nil
		}
	}
	return scanner.Err()
}

// handle executes one command line and returns whether the session is done
// plus the message to print.
func (s *Session) handle(line string) (bool, string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, ""
	}

	cmd := strings.ToLower(fields[0])
	arg := strings.Join(fields[1:], " ")

	switch cmd {
	case "save":
		if arg == "" {
			return false, "usage: save <word>"
		}
		if !s.list.Add(arg) {
			return false, fmt.Sprintf("%q is already saved", arg)
		}
		return false, fmt.Sprintf("saved %q (%d total)", arg, s.list.Len())

	case "drop":
		if arg == "" {
			return false, "usage: drop <word>"
		}
		if !s.list.Remove(arg) {
			return false, fmt.Sprintf("%q is not saved", arg)
		}
		return false, fmt.Sprintf("dropped %q (%d total)", arg, s.list.Len())

	case "list":
		if s.list.Len() == 0 {
			return false, "no saved words"
		}
		return false, strings.Join(s.list.Words(), "\n")

	case "help":
		return false, sessionHelp

	case "quit", "q", "exit":
		return true, ""

	default:
		return false, fmt.Sprintf("unknown command %q (%s)", cmd, sessionHelp)
	}
}
