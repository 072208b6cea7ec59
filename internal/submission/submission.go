// Package submission implements the pre-network gate for extraction
// requests: the request model, the ordered validation checks, and the
// optional PDF preflight. Everything here runs locally; no network
// activity starts until a request has passed Validate.
package submission

import (
	"os"
	"path/filepath"
)

// Submission limits, mirroring what the extraction service enforces
// server-side (413 for oversized uploads, 415 for non-PDF content).
const (
	// MaxFileSize is the largest accepted document: 10 MiB.
	MaxFileSize int64 = 10 << 20
	// Extension is the only accepted file extension.
	Extension = ".pdf"
)

// File describes the document being submitted. Validation reads only
// Name and Size; Data carries the raw content for the upload itself.
type File struct {
	Name string
	Size int64
	Data []byte
}

// Request is a complete submission: the label naming the document kind,
// the raw schema text, and the document to extract from.
type Request struct {
	Label      string
	SchemaText string
	File       File
}

// Load builds a File from a local path, reading the full content into
// memory. The submission size cap keeps this bounded.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}

	return File{
		Name: filepath.Base(path),
		Size: int64(len(data)),
		Data: data,
	}, nil
}
