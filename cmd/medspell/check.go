package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"medspell/internal/dictionary"
	"medspell/internal/session"
	"medspell/internal/settings"
	"medspell/internal/textutil"
)

type report struct {
	Original  string        `json:"original"`
	Corrected string        `json:"corrected,omitempty"`
	Errors    []reportError `json:"errors"`
}

type reportError struct {
	Word        string   `json:"word"`
	Position    int      `json:"position"`
	End         int      `json:"end"`
	Suggestions []string `json:"suggestions"`
	Distances   []int    `json:"distances"`
}

// buildReport scans text once. With auto-correct on the text goes through a
// session so the corrected text and remaining errors match the editor.
func buildReport(ctx context.Context, a *app, text string, st settings.Settings) report {
	r := report{Original: text, Errors: []reportError{}}

	var errs []session.FlaggedError
	if st.AutoCorrect {
		host := session.NewStringHost(text)
		s := a.newSession(host, settings.NewMemoryStore(st))
		s.TextChanged(ctx)
		errs = s.Errors()
		if host.Replaced > 0 {
			r.Corrected = host.Text()
		}
	} else {
		errs = a.engine.Scan(text, st)
	}

	for _, e := range errs {
		r.Errors = append(r.Errors, reportError{
			Word:        e.Word,
			Position:    e.Position,
			End:         e.End,
			Suggestions: e.Suggestions,
			Distances:   textutil.Distances(e.Word, e.Suggestions),
		})
	}
	return r
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// runFix walks the flagged errors one menu at a time, reading one answer per
// line from in: a suggestion number, "a" to add the word to the dictionary,
// "i" or an empty line to ignore it, "q" to stop.
func runFix(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) error {
	s.TextChanged(ctx)
	ignored := map[string]bool{}
	reader := bufio.NewReader(in)

	for {
		next, ok := pending(s.Errors(), ignored)
		if !ok {
			return nil
		}
		s.OpenMenu(next, session.Point{})
		printMenu(out, next)

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			s.Dismiss()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read answer: %w", err)
		}

		switch answer := strings.TrimSpace(line); answer {
		case "q":
			s.Dismiss()
			return nil
		case "a":
			if err := s.AddToDictionary(ctx); err != nil {
				fmt.Fprintf(out, "  saved for this run only: %v\n", err)
			}
		case "", "i":
			s.Ignore()
			ignored[dictionary.Normalize(next.Word)] = true
		default:
			n, err := strconv.Atoi(answer)
			if err != nil || n < 1 || n > len(next.Suggestions) {
				fmt.Fprintf(out, "  unknown answer %q\n", answer)
				s.Dismiss()
				continue
			}
			s.Apply(ctx, next.Suggestions[n-1])
		}
	}
}

func pending(errs []session.FlaggedError, ignored map[string]bool) (session.FlaggedError, bool) {
	for _, e := range errs {
		if !ignored[dictionary.Normalize(e.Word)] {
			return e, true
		}
	}
	return session.FlaggedError{}, false
}

func printMenu(w io.Writer, e session.FlaggedError) {
	fmt.Fprintf(w, "%q at %d:\n", e.Word, e.Position)
	for i, sug := range e.Suggestions {
		fmt.Fprintf(w, "  %d) %s\n", i+1, sug)
	}
	fmt.Fprintln(w, "  a) add to dictionary  i) ignore  q) quit")
	fmt.Fprint(w, "> ")
}
