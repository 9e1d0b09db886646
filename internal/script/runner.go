package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/succinct/internal/bitvec"
	"github.com/dshills/succinct/internal/bptree"
)

// handlerFunc executes one command. A non-nil result is a query answer
// destined for the sink.
type handlerFunc func(args []int) (*int, error)

type handlerEntry struct {
	arity int
	fn    handlerFunc
}

// Runner dispatches parsed commands to a registered handler set.
type Runner struct {
	algo     string
	handlers map[string]handlerEntry
	space    func() int
}

// Report summarizes one script run.
type Report struct {
	// RunID uniquely identifies the run in diagnostics.
	RunID string

	// Algo is "bv" or "bp".
	Algo string

	// Commands is the number of commands executed.
	Commands int

	// Elapsed is the execution time excluding output writing.
	Elapsed time.Duration

	// SpaceBits estimates the structure's storage after the run.
	SpaceBits int
}

// NewBV creates a runner over a bit vector.
func NewBV(v *bitvec.Vector) *Runner {
	r := &Runner{algo: "bv", handlers: map[string]handlerEntry{}, space: v.SpaceBits}
	r.register("access", 1, func(args []int) (*int, error) {
		_, err := v.Access(args[0])
		return nil, err
	})
	r.register("insert", 2, func(args []int) (*int, error) {
		return nil, v.Insert(args[0], args[1] != 0)
	})
	r.register("delete", 1, func(args []int) (*int, error) {
		return nil, v.Delete(args[0])
	})
	r.register("flip", 1, func(args []int) (*int, error) {
		return nil, v.Flip(args[0])
	})
	r.register("rank", 2, func(args []int) (*int, error) {
		n, err := v.Rank(args[0] != 0, args[1])
		return &n, err
	})
	r.register("select", 2, func(args []int) (*int, error) {
		n, err := v.Select(args[0] != 0, args[1])
		return &n, err
	})
	return r
}

// NewBP creates a runner over a balanced-parenthesis tree.
func NewBP(t *bptree.Tree) *Runner {
	r := &Runner{algo: "bp", handlers: map[string]handlerEntry{}, space: t.Vector().SpaceBits}
	r.register("deletenode", 1, func(args []int) (*int, error) {
		return nil, t.DeleteNode(args[0])
	})
	r.register("insertchild", 3, func(args []int) (*int, error) {
		return nil, t.InsertChild(args[0], args[1], args[2])
	})
	r.register("child", 2, func(args []int) (*int, error) {
		n, err := t.Child(args[0], args[1])
		return &n, err
	})
	subtree := func(args []int) (*int, error) {
		n, err := t.SubtreeSize(args[0])
		return &n, err
	}
	r.register("subtree-size", 1, subtree)
	// Accepted spelling in older scripts.
	r.register("subtree", 1, subtree)
	r.register("parent", 1, func(args []int) (*int, error) {
		n, err := t.Parent(args[0])
		return &n, err
	})
	return r
}

func (r *Runner) register(name string, arity int, fn handlerFunc) {
	r.handlers[name] = handlerEntry{arity: arity, fn: fn}
}

// Execute dispatches one command and returns its query answer, if any.
func (r *Runner) Execute(cmd Command) (*int, error) {
	h, ok := r.handlers[cmd.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Name)
	}
	if len(cmd.Args) != h.arity {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, cmd.Name, h.arity, len(cmd.Args))
	}
	return h.fn(cmd.Args)
}

// Run streams commands from rd, writing one line per query answer to w
// in request order. It stops at the first core or parse error.
func (r *Runner) Run(rd io.Reader, w io.Writer) (Report, error) {
	rep := Report{RunID: uuid.NewString(), Algo: r.algo}
	out := bufio.NewWriter(w)
	defer out.Flush()

	start := time.Now()
	sc := bufio.NewScanner(rd)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		cmd, err := ParseCommand(text)
		if err != nil {
			return rep, fmt.Errorf("line %d: %w", line, err)
		}
		res, err := r.Execute(cmd)
		if err != nil {
			return rep, fmt.Errorf("line %d: %s: %w", line, cmd.Name, err)
		}
		rep.Commands++
		if res != nil {
			if _, err := fmt.Fprintf(out, "%d\n", *res); err != nil {
				return rep, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return rep, err
	}
	rep.Elapsed = time.Since(start)
	rep.SpaceBits = r.space()
	return rep, out.Flush()
}

// RunBV executes a bv script: a bit-count header, the seed bits, then
// commands. Vector options (such as block capacity) are applied before
// the seed bits are pushed.
func RunBV(rd io.Reader, w io.Writer, opts ...bitvec.Option) (Report, error) {
	buffered := bufio.NewReader(rd)
	vec, err := bitvec.New(opts...)
	if err != nil {
		return Report{}, err
	}
	if err := loadBits(buffered, vec); err != nil {
		return Report{}, err
	}
	return NewBV(vec).Run(buffered, w)
}

// RunBP executes a bp script against a tree that starts as a single
// root.
func RunBP(rd io.Reader, w io.Writer, opts ...bitvec.Option) (Report, error) {
	tree, err := bptree.New(opts...)
	if err != nil {
		return Report{}, err
	}
	return NewBP(tree).Run(rd, w)
}

// loadBits consumes the bv preamble: a count line followed by that many
// '0'/'1' lines pushed in order.
func loadBits(rd *bufio.Reader, vec *bitvec.Vector) error {
	header, err := readLine(rd)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	var n int
	if _, err := fmt.Sscanf(header, "%d", &n); err != nil || n < 0 {
		return fmt.Errorf("%w: %q", ErrBadHeader, header)
	}
	for i := 0; i < n; i++ {
		bit, err := readLine(rd)
		if err != nil {
			return fmt.Errorf("%w: %d seed bits promised, %d found", ErrBadHeader, n, i)
		}
		switch bit {
		case "0":
			vec.Push(false)
		case "1":
			vec.Push(true)
		default:
			return fmt.Errorf("%w: seed bit %q", ErrBadHeader, bit)
		}
	}
	return nil
}

// readLine returns the next non-empty trimmed line.
func readLine(rd *bufio.Reader) (string, error) {
	for {
		text, err := rd.ReadString('\n')
		trimmed := strings.TrimSpace(text)
		if trimmed != "" {
			return trimmed, nil
		}
		if err != nil {
			return "", err
		}
	}
}
