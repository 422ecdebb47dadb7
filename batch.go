package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/fragmede/linkedinify/internal/api"
	"github.com/fragmede/linkedinify/internal/config"
	"github.com/fragmede/linkedinify/internal/ui/composer"
)

var errNotSignedIn = errors.New("not signed in: run linkedinify and log in first")

type tokenSource interface {
	Token(ctx context.Context) (string, bool)
}

type batchTransformer interface {
	BatchTransform(ctx context.Context, token string, texts []string, limit int) ([]api.BatchResult, error)
}

// runBatch rewrites every non-empty line of cfg.BatchFile and prints the
// results in input order.
func runBatch(ctx context.Context, cfg config.Config, client batchTransformer, tokens tokenSource, stdout, stderr io.Writer) error {
	token, ok := tokens.Token(ctx)
	if !ok || token == "" {
		return errNotSignedIn
	}

	var in io.Reader
	if cfg.BatchFile == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(stderr, "Reading from the terminal, one text per line. End with Ctrl+D.")
		}
		in = os.Stdin
	} else {
		f, err := os.Open(cfg.BatchFile)
		if err != nil {
			return fmt.Errorf("opening batch file: %w", err)
		}
		defer f.Close()
		in = f
	}

	texts, err := readLines(in)
	if err != nil {
		return fmt.Errorf("reading batch input: %w", err)
	}
	if len(texts) == 0 {
		return nil
	}

	results, err := client.BatchTransform(ctx, token, texts, cfg.BatchConcurrency)
	if err != nil {
		return err
	}
	return writeResults(stdout, results)
}

// readLines returns the trimmed non-empty lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

func writeResults(w io.Writer, results []api.BatchResult) error {
	for _, r := range results {
		var line string
		switch {
		case r.Err != nil:
			line = "error: " + errorDetail(r.Err)
		case r.Post == "":
			line = composer.FallbackPost
		default:
			line = r.Post
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func errorDetail(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return err.Error()
}
