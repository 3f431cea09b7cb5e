package jstore

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"go.hasen.dev/generic"
)

// Logger receives the one failure this package suppresses: a temp file that
// could not be removed during Save cleanup. Escalating that would mask the
// real outcome of the save. Set to nil to silence.
var Logger = log.New(os.Stderr, "[jstore] ", log.LstdFlags)

func logf(format string, args ...any) {
	if Logger != nil {
		Logger.Printf(format, args...)
	}
}

// Load reads filename and decodes it with the JSON codec.
//
// A missing file is a normal first-run state, not an error: Load returns
// def, or a fresh empty mapping when def is nil. All other failures are
// fatal and classified as *ReadError or *DecodeError.
func Load(filename string, def any) (any, error) {
	return LoadCodec(filename, def, JSON{})
}

// LoadCodec is Load with an explicit codec.
func LoadCodec(filename string, def any, c Codec) (any, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		if def == nil {
			var m map[string]any
			generic.InitMap(&m)
			return m, nil
		}
		return def, nil
	}
	if err != nil {
		return nil, &ReadError{Filename: filename, Err: err}
	}
	var v any
	if err := c.Decode(data, &v); err != nil {
		return nil, &DecodeError{Filename: filename, Err: err}
	}
	return v, nil
}

// Save encodes v with the JSON codec and atomically replaces filename with
// the result.
//
// The content is staged into a temp file in the target's directory and
// renamed over the target, so readers never observe a partial file; on any
// failure the previous content of filename is untouched. The file ends up
// owner read/write only when private is set, world-readable otherwise.
func Save(filename string, v any, private bool) error {
	return SaveCodec(filename, v, private, JSON{})
}

// SaveCodec is Save with an explicit codec.
func SaveCodec(filename string, v any, private bool, c Codec) error {
	data, err := c.Encode(v)
	if err != nil {
		return &SerializationError{
			Filename: filename,
			Paths:    FindUnserializablePaths(v, c),
			Err:      err,
		}
	}

	// The temp file must live in the same directory as the target: the
	// final rename is only atomic within one filesystem.
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp")
	if err != nil {
		return &WriteError{Filename: filename, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		// On success the rename consumed the temp file; on failure it is
		// an orphan. Either way it must not outlive this call.
		if _, err := os.Stat(tmpName); err == nil {
			if err := os.Remove(tmpName); err != nil {
				logf("temp file cleanup failed: %v", err)
			}
		}
	}()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr != nil {
		return &WriteError{Filename: filename, Err: werr}
	}
	if cerr != nil {
		return &WriteError{Filename: filename, Err: cerr}
	}

	// CreateTemp made the file 0600. Private saves keep that.
	if !private {
		if err := os.Chmod(tmpName, 0o644); err != nil {
			return &WriteError{Filename: filename, Err: err}
		}
	}

	if err := renameFile(tmpName, filename); err != nil {
		return &WriteError{Filename: filename, Err: err}
	}
	return nil
}

// renameFile performs the atomic replace; tests swap it out to simulate a
// fault between the temp write and the replace.
var renameFile = os.Rename
