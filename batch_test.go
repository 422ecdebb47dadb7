package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fragmede/linkedinify/internal/api"
	"github.com/fragmede/linkedinify/internal/config"
	"github.com/fragmede/linkedinify/internal/ui/composer"
)

type staticToken string

func (s staticToken) Token(context.Context) (string, bool) { return string(s), s != "" }

type fakeBatch struct {
	token string
	texts []string
	limit int
}

func (f *fakeBatch) BatchTransform(_ context.Context, token string, texts []string, limit int) ([]api.BatchResult, error) {
	f.token, f.texts, f.limit = token, texts, limit
	out := make([]api.BatchResult, len(texts))
	for i, t := range texts {
		out[i] = api.BatchResult{Input: t}
		switch t {
		case "fail":
			out[i].Err = &api.Error{Kind: api.KindTransform, StatusCode: 500, Detail: "model overloaded"}
		case "empty":
		case "markup":
			out[i].Post = "Growth <mindset> &amp;  grit"
		default:
			out[i].Post = "Excited to share: " + t
		}
	}
	return out, nil
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("one\n\n   \n  two  \r\nthree"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestRunBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nfail\n\nempty\nmarkup\n"), 0o600))

	cfg := config.Default()
	cfg.BatchFile = path
	cfg.BatchConcurrency = 3

	fb := &fakeBatch{}
	var stdout, stderr bytes.Buffer
	require.NoError(t, runBatch(context.Background(), cfg, fb, staticToken("tok"), &stdout, &stderr))

	assert.Equal(t, "tok", fb.token)
	assert.Equal(t, 3, fb.limit)
	assert.Equal(t, []string{"hello", "fail", "empty", "markup"}, fb.texts)
	assert.Equal(t,
		"Excited to share: hello\nerror: model overloaded\n"+composer.FallbackPost+"\n"+
			"Growth <mindset> &amp;  grit\n",
		stdout.String())
}

func TestRunBatch_NotSignedIn(t *testing.T) {
	cfg := config.Default()
	cfg.BatchFile = "does-not-matter"

	fb := &fakeBatch{}
	var stdout, stderr bytes.Buffer
	err := runBatch(context.Background(), cfg, fb, staticToken(""), &stdout, &stderr)
	assert.ErrorIs(t, err, errNotSignedIn)
	assert.Equal(t, "not signed in: run linkedinify and log in first", err.Error())
	assert.Nil(t, fb.texts)
}

func TestRunBatch_MissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.BatchFile = filepath.Join(t.TempDir(), "nope.txt")

	var stdout, stderr bytes.Buffer
	err := runBatch(context.Background(), cfg, &fakeBatch{}, staticToken("tok"), &stdout, &stderr)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestErrorDetail(t *testing.T) {
	assert.Equal(t, "bad", errorDetail(&api.Error{Kind: api.KindTransform, StatusCode: 400, Detail: "bad"}))
	assert.Equal(t, "boom", errorDetail(errors.New("boom")))
}
