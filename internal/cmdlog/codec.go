package cmdlog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// Warning describes a persisted record that could not be decoded and
// was skipped.
type Warning struct {
	Line    int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

// Writer appends entries to a stream, one JSON object per line.
// Forward-only; call Flush before the underlying stream is closed.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a Writer appending to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write appends one entry.
func (w *Writer) Write(e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding %s entry: %w", e.Kind, err)
	}
	if _, err := w.w.Write(data); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush writes buffered entries through to the underlying stream.
func (w *Writer) Flush() error { return w.w.Flush() }

// Reader decodes entries from a stream written by Writer. Records that
// cannot be decoded are skipped and reported through Warnings; apart
// from io.EOF, Read fails only when the underlying stream does.
type Reader struct {
	s        *bufio.Scanner
	line     int
	warnings []Warning
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{s: s}
}

// Read returns the next decodable entry, or io.EOF when the stream is
// exhausted.
func (r *Reader) Read() (Entry, error) {
	for r.s.Scan() {
		r.line++
		line := bytes.TrimSpace(r.s.Bytes())
		if len(line) == 0 {
			continue
		}
		if e, ok := r.decode(line); ok {
			return e, nil
		}
	}
	if err := r.s.Err(); err != nil {
		return Entry{}, fmt.Errorf("reading log: %w", err)
	}
	return Entry{}, io.EOF
}

// decode validates one record and unmarshals it. The kind tag is
// sniffed first so an unknown or missing tag is reported as such
// rather than as a generic unmarshal failure.
func (r *Reader) decode(line []byte) (Entry, bool) {
	if !gjson.ValidBytes(line) {
		r.warn("not valid JSON")
		return Entry{}, false
	}
	kind := gjson.GetBytes(line, "kind")
	if !kind.Exists() {
		r.warn("missing kind tag")
		return Entry{}, false
	}
	if k := Kind(kind.String()); !k.IsValid() {
		r.warn(fmt.Sprintf("unknown kind %q", kind.String()))
		return Entry{}, false
	}
	if !gjson.GetBytes(line, "time").Exists() {
		r.warn("missing time")
		return Entry{}, false
	}
	var e Entry
	if err := json.Unmarshal(line, &e); err != nil {
		r.warn(err.Error())
		return Entry{}, false
	}
	return e, true
}

func (r *Reader) warn(msg string) {
	r.warnings = append(r.warnings, Warning{Line: r.line, Message: msg})
}

// Warnings returns the records skipped so far, in input order.
func (r *Reader) Warnings() []Warning {
	return r.warnings
}

// WriteFile persists entries to path, creating parent directories as
// needed. The log is written to a temporary file and renamed into
// place so an interrupted write never leaves a truncated log behind.
func WriteFile(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}

	w := NewWriter(f)
	for _, e := range entries {
		if err := w.Write(e); err != nil {
			f.Close()
			os.Remove(tmp)
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("flushing log file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing log file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing log file: %w", err)
	}
	return nil
}

// ReadFile loads every decodable entry from path in file order,
// together with warnings for the records it skipped.
func ReadFile(path string) ([]Entry, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	r := NewReader(f)
	var entries []Entry
	for {
		e, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, r.Warnings(), err
		}
		entries = append(entries, e)
	}
	return entries, r.Warnings(), nil
}
