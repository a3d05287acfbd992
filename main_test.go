package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tschuyebuhl/wordfreq/reader"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, reader.OSOpener{}, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunReport(t *testing.T) {
	path := writeFile(t, "cats.txt", "The cat sat on the mat. The cat ran.")

	code, stdout, stderr := runArgs(t, path)
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d (stderr: %s)", exitOK, code, stderr)
	}
	want := "cat : 2 **\nmat : 1 *\nran : 1 *\nsat : 1 *\n\n"
	if stdout != want {
		t.Errorf("expected\n%q\ngot\n%q", want, stdout)
	}
	if first := strings.SplitN(stdout, "\n", 2)[0]; first != "cat : 2 **" {
		t.Errorf("unexpected first line %q", first)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	path := writeFile(t, "ties.txt", "zebra apple mango kiwi apple zebra fig date cherry")

	_, first, _ := runArgs(t, path)
	for i := 0; i < 10; i++ {
		if _, again, _ := runArgs(t, path); again != first {
			t.Fatalf("run %d differs:\n%q\n%q", i, first, again)
		}
	}
}

func TestRunOnlyStopWords(t *testing.T) {
	path := writeFile(t, "stop.txt", "The a an is")

	code, stdout, stderr := runArgs(t, path)
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d (stderr: %s)", exitOK, code, stderr)
	}
	if stdout != "" {
		t.Errorf("expected empty report, got %q", stdout)
	}
}

func TestRunMissingFile(t *testing.T) {
	code, stdout, _ := runArgs(t, "missing.txt")
	if code != exitFailure {
		t.Errorf("expected exit %d, got %d", exitFailure, code)
	}
	if stdout != "missing.txt does not exist!\n" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestRunDirectory(t *testing.T) {
	dir := t.TempDir()

	code, stdout, _ := runArgs(t, dir)
	if code != exitFailure {
		t.Errorf("expected exit %d, got %d", exitFailure, code)
	}
	if stdout != dir+" does not exist!\n" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestRunUnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	code, stdout, stderr := runArgs(t, path)
	if code != exitFailure {
		t.Errorf("expected exit %d, got %d", exitFailure, code)
	}
	if stdout != "" {
		t.Errorf("nothing should reach stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "cannot read file") {
		t.Errorf("expected read error on stderr, got %q", stderr)
	}
}

func TestRunUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"two files", []string{"a.txt", "b.txt"}},
		{"unknown flag", []string{"--nope", "a.txt"}},
		{"negative top", []string{"--top", "-1", "a.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runArgs(t, tt.args...)
			if code != exitUsage {
				t.Errorf("expected exit %d, got %d", exitUsage, code)
			}
			if stdout != "" {
				t.Errorf("nothing should reach stdout, got %q", stdout)
			}
			if !strings.Contains(stderr, "Usage:") {
				t.Errorf("expected usage on stderr, got %q", stderr)
			}
		})
	}
}

func TestRunTop(t *testing.T) {
	path := writeFile(t, "cats.txt", "The cat sat on the mat. The cat ran.")

	code, stdout, _ := runArgs(t, "--top", "2", path)
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	if want := "cat : 2 **\nmat : 1 *\n\n"; stdout != want {
		t.Errorf("expected %q, got %q", want, stdout)
	}
}

func TestRunHTML(t *testing.T) {
	page := `<html><head><script>var cat = 1;</script></head><body><h1>Dog</h1><p>the dog and the cat</p></body></html>`
	path := writeFile(t, "page.html", page)

	code, stdout, _ := runArgs(t, "--html", path)
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	if want := "dog : 2 **\ncat : 1 *\n\n"; stdout != want {
		t.Errorf("expected %q, got %q", want, stdout)
	}
}

func TestRunMetricsTextfile(t *testing.T) {
	path := writeFile(t, "cats.txt", "The cat sat on the mat. The cat ran.")
	textfile := filepath.Join(t.TempDir(), "wordfreq.prom")

	code, _, stderr := runArgs(t, "--metrics-textfile", textfile, path)
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d (stderr: %s)", exitOK, code, stderr)
	}

	b, err := os.ReadFile(textfile)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	for _, line := range []string{
		`wordfreq_word_count{file="` + path + `",word="cat"} 2`,
		`wordfreq_tokens 5`,
		`wordfreq_distinct_words 4`,
	} {
		if !strings.Contains(string(b), line) {
			t.Errorf("metrics missing %q:\n%s", line, b)
		}
	}
}
