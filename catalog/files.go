// SPDX-License-Identifier: MIT
// File: files.go
// Role: graph6 catalog files, plain or gzip-compressed.

package catalog

import (
	"bufio"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/katalvlaran/cliques/core"
)

// maxLine bounds a single graph6 line; 1 MiB covers graphs of several
// thousand vertices.
const maxLine = 1 << 20

type gzipReadCloser struct {
	*gzip.Reader
	f *os.File
}

func (r gzipReadCloser) Close() error {
	err := r.Reader.Close()
	if ferr := r.f.Close(); err == nil {
		err = ferr
	}

	return err
}

type gzipWriteCloser struct {
	*gzip.Writer
	f *os.File
}

func (w gzipWriteCloser) Close() error {
	err := w.Writer.Close()
	if ferr := w.f.Close(); err == nil {
		err = ferr
	}

	return err
}

func compressed(path string) bool { return strings.HasSuffix(path, ".gz") }

// Open opens a catalog for reading, decompressing ".gz" files.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: open %s", path)
	}
	if !compressed(path) {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()

		return nil, errors.Wrapf(err, "catalog: gunzip %s", path)
	}

	return gzipReadCloser{Reader: zr, f: f}, nil
}

// Create creates a catalog for writing, compressing ".gz" files.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: create %s", path)
	}
	if !compressed(path) {
		return f, nil
	}

	return gzipWriteCloser{Writer: gzip.NewWriter(f), f: f}, nil
}

// Read yields one graph per non-empty line of r. A decoding error is
// yielded with its 1-based line number and ends the sequence.
func Read(r io.Reader) iter.Seq2[*core.Graph, error] {
	return func(yield func(*core.Graph, error) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLine)
		line := 0
		for sc.Scan() {
			line++
			text := strings.TrimSpace(sc.Text())
			if text == "" || text == header {
				continue
			}
			g, err := Decode(text)
			if err != nil {
				yield(nil, errors.Wrapf(err, "line %d", line))
				return
			}
			if !yield(g, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(nil, errors.Wrap(err, "catalog: scan"))
		}
	}
}

// Load reads every graph of the catalog at path.
func Load(path string) ([]*core.Graph, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var out []*core.Graph
	for g, err := range Read(rc) {
		if err != nil {
			return nil, errors.Wrapf(err, "catalog: %s", path)
		}
		out = append(out, g)
	}

	return out, nil
}

// Write writes one graph6 line per graph.
func Write(w io.Writer, graphs ...*core.Graph) error {
	bw := bufio.NewWriter(w)
	for i, g := range graphs {
		s, err := Encode(g)
		if err != nil {
			return errors.Wrapf(err, "catalog: graph %d", i)
		}
		if _, err = bw.WriteString(s + "\n"); err != nil {
			return errors.Wrap(err, "catalog: write")
		}
	}

	return errors.Wrap(bw.Flush(), "catalog: flush")
}

// Save writes graphs to a new catalog at path.
func Save(path string, graphs ...*core.Graph) error {
	wc, err := Create(path)
	if err != nil {
		return err
	}
	if err = Write(wc, graphs...); err != nil {
		wc.Close()

		return err
	}

	return errors.Wrapf(wc.Close(), "catalog: close %s", path)
}

// Filter copies the graph lines of src at the given 0-based positions to
// dst, keeping their original order, and returns how many were copied.
// Lines are copied verbatim without decoding.
func Filter(src, dst string, indices []int) (int, error) {
	want := make(map[int]bool, len(indices))
	for _, i := range indices {
		want[i] = true
	}
	in, err := Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()
	out, err := Create(dst)
	if err != nil {
		return 0, err
	}

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	bw := bufio.NewWriter(out)
	index, copied := 0, 0
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" || text == header {
			continue
		}
		if want[index] {
			if _, err = bw.WriteString(text + "\n"); err != nil {
				out.Close()

				return copied, errors.Wrapf(err, "catalog: write %s", dst)
			}
			copied++
		}
		index++
	}
	if err = sc.Err(); err != nil {
		out.Close()

		return copied, errors.Wrapf(err, "catalog: read %s", src)
	}
	if err = bw.Flush(); err != nil {
		out.Close()

		return copied, errors.Wrapf(err, "catalog: flush %s", dst)
	}

	return copied, errors.Wrapf(out.Close(), "catalog: close %s", dst)
}
