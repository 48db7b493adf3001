package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cognicore/nlplab/pkg/nlplab"
	"github.com/cognicore/nlplab/pkg/nlplab/internalerr"
)

// State is the interactive session's selection: the active phase and the
// operation that plain input lines run. Overview has no operation.
type State struct {
	Phase string
	Op    string
}

// NewState starts on the overview.
func NewState() State {
	return State{Phase: nlplab.PhaseOverview}
}

// SelectPhase switches to a phase and its first operation.
func (s State) SelectPhase(name string) (State, error) {
	for _, p := range nlplab.Phases() {
		if p.Name != name {
			continue
		}
		next := State{Phase: p.Name}
		if len(p.Operations) > 0 {
			next.Op = p.Operations[0]
		}
		return next, nil
	}
	return s, fmt.Errorf("unknown phase %q", name)
}

// SelectOp switches to an operation and its phase.
func (s State) SelectOp(name string) (State, error) {
	op, ok := nlplab.Lookup(name)
	if !ok {
		return s, fmt.Errorf("%q: %w", name, internalerr.ErrUnknownOperation)
	}
	return State{Phase: op.Phase, Op: op.Name}, nil
}

// Prompt shows the selection, e.g. "semantic/ner> ".
func (s State) Prompt() string {
	if s.Op == "" {
		return s.Phase + "> "
	}
	return s.Phase + "/" + s.Op + "> "
}

const replHelp = `Commands:
  :phase <name>   switch phase (overview, morphological, lexical, syntactic,
                  semantic, pragmatic, discourse)
  :op <name>      switch operation
  :ops            list operations
  :sample         run the current operation on its sample input
  :help           show this help
  :quit           leave
Any other line runs the current operation. Stem and lemmatize take a
comma-separated word list.
`

var errQuit = errors.New("quit")

// Repl is an interactive session over an engine.
type Repl struct {
	engine *nlplab.Engine
	out    io.Writer
	state  State
}

// NewRepl creates a session starting on the overview.
func NewRepl(engine *nlplab.Engine, out io.Writer) *Repl {
	return &Repl{engine: engine, out: out, state: NewState()}
}

// State returns the current selection.
func (r *Repl) State() State {
	return r.state
}

// Run reads lines from in until EOF, :quit or ctx ends.
func (r *Repl) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(r.out, "nlplab interactive session. Type :help for commands.")
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, r.state.Prompt())
		if !sc.Scan() {
			break
		}
		err := r.Handle(ctx, sc.Text())
		if errors.Is(err, errQuit) {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			fmt.Fprintln(r.out, "Error:", err)
		}
	}
	fmt.Fprintln(r.out, "\nGoodbye!")
	return sc.Err()
}

// Handle processes one input line. Text lines are analyzed as typed,
// surrounding whitespace included.
func (r *Repl) Handle(ctx context.Context, line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	if !strings.HasPrefix(trimmed, ":") {
		return r.run(ctx, line)
	}

	cmd, arg, _ := strings.Cut(trimmed[1:], " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "quit", "q", "exit":
		return errQuit
	case "help", "h":
		_, err := io.WriteString(r.out, replHelp)
		return err
	case "ops":
		return printOperations(r.out)
	case "phase":
		next, err := r.state.SelectPhase(arg)
		if err != nil {
			return err
		}
		r.state = next
		if next.Phase == nlplab.PhaseOverview {
			_, err := io.WriteString(r.out, overview())
			return err
		}
		return nil
	case "op":
		next, err := r.state.SelectOp(arg)
		if err != nil {
			return err
		}
		r.state = next
		return nil
	case "sample":
		op, ok := nlplab.Lookup(r.state.Op)
		if !ok {
			return errNoOperation
		}
		fmt.Fprintln(r.out, op.Sample)
		return r.run(ctx, op.Sample)
	}
	return fmt.Errorf("unknown command :%s (try :help)", cmd)
}

var errNoOperation = errors.New("no operation selected; use :op <name> or :phase <name>")

func (r *Repl) run(ctx context.Context, text string) error {
	if r.state.Op == "" {
		return errNoOperation
	}
	res, err := r.engine.Analyze(ctx, nlplab.Request{Op: r.state.Op, Text: text})
	if errors.Is(err, internalerr.ErrEmptyInput) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.out, Render(res))
	return err
}

func overview() string {
	var b strings.Builder
	b.WriteString("Phases of natural language processing:\n")
	for _, p := range nlplab.Phases() {
		if p.Name == nlplab.PhaseOverview {
			continue
		}
		fmt.Fprintf(&b, "  %-14s %s\n", p.Name, strings.Join(p.Operations, ", "))
	}
	return b.String()
}

func newReplCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewRepl(app.Engine, cmd.OutOrStdout()).Run(cmd.Context(), cmd.InOrStdin())
		},
	}
}
