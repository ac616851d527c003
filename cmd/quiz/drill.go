package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	engine "github.com/heartmarshall/wortschatz-backend/internal/quiz"
)

var stageTitles = map[engine.Stage]string{
	engine.Direction1Active: "Chinese → German",
	engine.Direction2Active: "German → Chinese",
}

// drill runs the question loop until the user quits, input ends or ctx is
// cancelled. A pending advance is awaited before the next question is shown.
func drill(ctx context.Context, r *engine.Runner, lines <-chan string, out io.Writer) error {
	for {
		st := r.State()

		if st.Completed() {
			fmt.Fprintf(out, "\nDone! Score: %d/%d\n[r] restart  [q] quit\n> ", st.Correct(), st.Total())
			line, err := next(ctx, lines)
			if err != nil {
				return ignoreEOF(err)
			}
			switch line {
			case "r":
				if _, err := r.Restart(); err != nil {
					return err
				}
			case "q":
				return nil
			}
			continue
		}

		q, _ := st.Question()
		fmt.Fprintf(out, "\n[%s] %d/%d\n%s\n", stageTitles[st.Stage()], st.Index()+1, st.Len(), q.Prompt)
		for i, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, o.Text)
		}
		fmt.Fprint(out, "> ")

		line, err := next(ctx, lines)
		if err != nil {
			return ignoreEOF(err)
		}
		if line == "q" {
			return nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(q.Options) {
			fmt.Fprintf(out, "Enter a number from 1 to %d, or q to quit.\n", len(q.Options))
			continue
		}

		answered, err := r.Answer(n - 1)
		if err != nil {
			return err
		}
		if fb, _ := answered.Feedback(); fb.Correct {
			fmt.Fprintln(out, "✓ correct")
		} else {
			fmt.Fprintf(out, "✗ wrong, answer: %s\n", q.Options[q.CorrectIndex()].Text)
		}

		if _, err := r.AwaitAdvance(ctx); err != nil {
			return err
		}
	}
}

func next(ctx context.Context, lines <-chan string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lines:
		if !ok {
			return "", io.EOF
		}
		return strings.ToLower(strings.TrimSpace(line)), nil
	}
}

func ignoreEOF(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}

// readLines feeds scanned lines into a channel that closes at end of input.
func readLines(ctx context.Context, sc *bufio.Scanner) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
