package site

import (
	"embed"
	"io/fs"
)

//go:embed content
var embedded embed.FS

// defaultContent returns the compiled-in content tree rooted at the
// definition files.
func defaultContent() fs.FS {
	sub, err := fs.Sub(embedded, "content")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}
