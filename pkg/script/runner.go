package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-queue/pkg/datastructs/queue"
)

const emptyMarker = "(empty)"

var (
	// ErrUnknownCommand is returned for a line whose verb is not recognised.
	ErrUnknownCommand = errors.New("script: unknown command")
	// ErrBadArguments is returned when a command gets the wrong number of arguments.
	ErrBadArguments = errors.New("script: bad arguments")
)

// Runner executes line commands against a string queue.
//
// Recognised commands:
//
//	offer <value...>  offer each value in order
//	poll              poll one value and print it
//	peek              print the front value
//	size | len        print the item count
//	clear             remove all values
//	dump              print all values front to back
//	end               stop reading
//
// Only a line whose first word is "end" stops the run; "offer end" offers it.
// Blank lines and lines starting with '#' are skipped.
type Runner struct {
	q   queue.Queue[string]
	log *zap.Logger
}

// NewRunner creates a Runner over q. A nil logger disables logging.
func NewRunner(q queue.Queue[string], log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{q: q, log: log}
}

// Run reads commands from in until EOF, an "end" line, an error or ctx is done,
// writing command output to w. Returns the number of commands executed.
func (r *Runner) Run(ctx context.Context, in io.Reader, w io.Writer) (int, error) {
	sc := bufio.NewScanner(in)
	executed := 0

	for lineNo := 1; sc.Scan(); lineNo++ {
		if err := ctx.Err(); err != nil {
			return executed, err
		}

		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		verb := strings.ToLower(fields[0])
		if verb == "end" {
			r.log.Debug("script end", zap.Int("line", lineNo))
			return executed, nil
		}

		if err := r.exec(verb, fields[1:], w); err != nil {
			return executed, errors.Wrapf(err, "line %d", lineNo)
		}
		executed++
		r.log.Debug("script command",
			zap.Int("line", lineNo),
			zap.String("cmd", verb),
			zap.Int("size", r.q.Len()),
		)
	}

	return executed, errors.Wrap(sc.Err(), "read script")
}

func (r *Runner) exec(verb string, args []string, w io.Writer) error {
	if verb == "offer" {
		if len(args) == 0 {
			return errors.Wrap(ErrBadArguments, "offer needs at least one value")
		}
		for _, v := range args {
			r.q.Offer(v)
		}
		return nil
	}

	if len(args) != 0 {
		return errors.Wrapf(ErrBadArguments, "%s takes no arguments", verb)
	}

	switch verb {
	case "poll":
		v, ok := r.q.Poll()
		return printValue(w, v, ok)
	case "peek":
		v, ok := r.q.Peek()
		return printValue(w, v, ok)
	case "size", "len":
		_, err := fmt.Fprintln(w, strconv.Itoa(r.q.Len()))
		return err
	case "clear":
		r.q.Clear()
		return nil
	case "dump":
		vals := r.values()
		if len(vals) == 0 {
			return printValue(w, "", false)
		}
		_, err := fmt.Fprintln(w, strings.Join(vals, " "))
		return err
	default:
		return errors.Wrapf(ErrUnknownCommand, "%q", verb)
	}
}

// values snapshots the queue without consuming it.
func (r *Runner) values() []string {
	if s, ok := r.q.(interface{ Values() []string }); ok {
		return s.Values()
	}

	vals := make([]string, 0, r.q.Len())
	for n := r.q.Len(); n > 0; n-- {
		v, _ := r.q.Poll()
		vals = append(vals, v)
		r.q.Offer(v)
	}
	return vals
}

func printValue(w io.Writer, v string, ok bool) error {
	if !ok {
		v = emptyMarker
	}
	_, err := fmt.Fprintln(w, v)
	return err
}
