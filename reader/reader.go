package reader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/tschuyebuhl/wordfreq/data"
)

var (
	NotFound   = errors.New("does not exist")
	Unreadable = errors.New("cannot read file")
)

// OSOpener opens files from the local filesystem.
type OSOpener struct{}

func (OSOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (OSOpener) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// IsFile reports whether path names an existing regular file.
func IsFile(opener data.Opener, path string) bool {
	fi, err := opener.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

/*
ReadContents returns the whole content of path as a single document.
The file is opened once and closed before returning, whatever happens in between.
*/
func ReadContents(opener data.Opener, path string) (data.Document, error) {
	if !IsFile(opener, path) {
		return "", fmt.Errorf("%s %w", path, NotFound)
	}

	f, err := opener.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s %w", path, NotFound)
		}
		return "", fmt.Errorf("%w %s: %v", Unreadable, path, err)
	}
	defer func(f io.ReadCloser) {
		_ = f.Close()
	}(f)

	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("%w %s: %v", Unreadable, path, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w %s: not valid UTF-8 text", Unreadable, path)
	}

	slog.Debug("read file", "path", path, "bytes", len(b))
	return data.Document(b), nil
}
