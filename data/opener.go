package data

import (
	"io"
	"io/fs"
)

type Opener interface {
	Open(string) (io.ReadCloser, error)
	Stat(string) (fs.FileInfo, error)
}
