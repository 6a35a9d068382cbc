package csvsource

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Eden-Eldith/framescan/pkg/framescan/internalerr"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCorpus(t, "url,headline\n"+
		"https://example.org/1,New special school opens\n"+
		"https://example.org/2,\"Mental health, chronic pain support\"\n"+
		"https://example.org/3,\n"+ // blank headline dropped
		"https://example.org/4\n"+ // short row skipped
		"https://example.org/5,  Local   weather update \n")

	got, err := Load(path, "headline")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{
		"New special school opens",
		"Mental health, chronic pain support",
		"Local weather update",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Load = %q, want %q", got, want)
	}
}

// A quoted headline spanning physical lines must not throw off the line
// numbers reported for later skipped rows.
func TestLoadMultilineQuotedField(t *testing.T) {
	path := writeCorpus(t, "url,headline\n"+ // line 1
		"https://example.org/1,\"Mental health\nsupport expanded\"\n"+ // lines 2-3
		"https://example.org/2\n"+ // line 4, short row
		"https://example.org/3,Final headline\n") // line 5

	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	got, err := Load(path, "headline")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{"Mental health support expanded", "Final headline"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Load = %q, want %q", got, want)
	}
	if !strings.Contains(logs.String(), "line 4") {
		t.Errorf("short-row warning should name line 4, got: %s", logs.String())
	}
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeCorpus(t, "url,title\nhttps://example.org,hello\n")
	if _, err := Load(path, "headline"); !errors.Is(err, internalerr.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

func TestLoadEmptyCorpus(t *testing.T) {
	path := writeCorpus(t, "url,headline\n")
	if _, err := Load(path, "headline"); !errors.Is(err, internalerr.ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestCleanStripsMarkup(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain headline", "plain headline"},
		{"<b>Benefits</b> cut for carers", "Benefits cut for carers"},
		{"Health &amp; social care", "Health & social care"},
		{"  spaced\tout\n text ", "spaced out text"},
		{"<span class=\"x\">nested <i>tags</i></span>", "nested tags"},
	}
	for _, tc := range cases {
		if got := Clean(tc.in); got != tc.want {
			t.Errorf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
