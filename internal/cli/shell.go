package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/internal/sanitize"
	"github.com/aretw0/arbor/pkg/domain"
)

const shellHelp = `Type a command id to run it. Shell commands:

  :commands         list commands
  :tabs             list open tabs
  :focus <object>   focus an open tab
  :close [object]   close a tab (default: the focused one)
  :objects          list live objects
  :metrics          dump metrics
  :quit             exit
`

// errQuit ends the shell loop.
var errQuit = errors.New("quit")

// Shell is the interactive command palette: one command id per line.
type Shell struct {
	app    *App
	in     io.Reader
	out    io.Writer
	render tui.Render
	prompt bool
	limit  int
}

type ShellOption func(*Shell)

// WithRenderer sets how views and listings are rendered. Defaults to tui.Plain.
func WithRenderer(r tui.Render) ShellOption {
	return func(s *Shell) {
		if r != nil {
			s.render = r
		}
	}
}

// WithPrompt prints a "> " prompt before each line.
func WithPrompt(on bool) ShellOption {
	return func(s *Shell) { s.prompt = on }
}

// WithMaxInputSize caps the length of a palette line.
func WithMaxInputSize(n int) ShellOption {
	return func(s *Shell) { s.limit = n }
}

// NewShell creates a palette reading from in and writing to out.
func NewShell(app *App, in io.Reader, out io.Writer, opts ...ShellOption) *Shell {
	s := &Shell{
		app:    app,
		in:     in,
		out:    out,
		render: tui.Plain,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads lines until EOF, :quit, or ctx is cancelled.
// Command failures are reported and the loop goes on.
func (s *Shell) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 4096), bufio.MaxScanTokenSize*4)
	for {
		if s.prompt {
			fmt.Fprint(s.out, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return nil
		}

		line, err := sanitize.Input(scanner.Text(), s.limit)
		if err == nil {
			err = s.Exec(ctx, line)
		}
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

// Exec runs one palette line.
func (s *Shell) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, rest := fields[0], fields[1:]

	switch name {
	case ":q", ":quit", "exit", "quit":
		return errQuit
	case ":help", "?":
		fmt.Fprint(s.out, shellHelp)
		return nil
	case ":commands":
		return s.show(tui.PaletteMarkdown(s.app.Runtime.Commands()))
	case ":tabs":
		return s.showTabs()
	case ":objects":
		return s.showObjects()
	case ":metrics":
		return s.app.WriteMetrics(s.out)
	case ":focus":
		if len(rest) != 1 {
			return errors.New("usage: :focus <object>")
		}
		obj, ok := s.app.Runtime.Object(rest[0])
		if !ok {
			return fmt.Errorf("no live object %s", rest[0])
		}
		if err := s.app.Tabs.AddOrFocus(ctx, obj); err != nil {
			return err
		}
		return s.showFocused()
	case ":close":
		var err error
		if len(rest) > 0 {
			err = s.app.Tabs.Close(ctx, rest[0])
		} else {
			err = s.app.Tabs.CloseFocused(ctx)
		}
		if err != nil {
			return err
		}
		return s.showTabs()
	}

	if strings.HasPrefix(name, ":") {
		return fmt.Errorf("unknown shell command %s (try :help)", name)
	}
	args := make([]any, len(rest))
	for i, a := range rest {
		args[i] = a
	}
	return s.Invoke(ctx, name, args...)
}

// Invoke runs the command id and shows the focused tab. Shell commands such as
// :quit are not interpreted; id is always looked up in the command registry.
func (s *Shell) Invoke(ctx context.Context, id string, args ...any) error {
	err := s.app.Runtime.Invoke(ctx, id, args...)
	if errors.Is(err, domain.ErrUnknownCommand) {
		if hints := s.app.Runtime.SuggestCommands(id, 3); len(hints) > 0 {
			return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(hints, ", "))
		}
	}
	if err != nil {
		return err
	}
	return s.showFocused()
}

func (s *Shell) showFocused() error {
	obj, ok := s.app.Tabs.Focused()
	if !ok {
		return nil
	}
	v := obj.View()
	if v.IsZero() {
		return nil
	}
	out, err := s.render.RenderView(v)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, out)
	return nil
}

func (s *Shell) showTabs() error {
	focused := ""
	if obj, ok := s.app.Tabs.Focused(); ok {
		focused = obj.ID()
	}
	return s.show(tui.TabsMarkdown(s.app.Tabs.List(), focused))
}

func (s *Shell) showObjects() error {
	objs := s.app.Runtime.Objects()
	if len(objs) == 0 {
		return s.show("_No live objects._\n")
	}
	var sb strings.Builder
	sb.WriteString("## Objects\n\n")
	for _, o := range objs {
		fmt.Fprintf(&sb, "- `%s` tags: %s\n", o.ID(), strings.Join(o.Tags(), ", "))
	}
	return s.show(sb.String())
}

func (s *Shell) show(markdown string) error {
	out, err := s.render(markdown)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, out)
	return nil
}
