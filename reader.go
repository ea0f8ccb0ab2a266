// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fuse

import "io"

// Reader wraps the transport's read half and turns the ambiguous
// end-of-stream into a typed outcome. Live data passes through
// untouched; only the io.EOF boundary is classified.
type Reader struct {
	inner  io.Reader
	cell   *cell
	serial Serial
}

// Read implements io.Reader on the inner read half. Positive counts and
// non-EOF errors pass through unchanged. On io.EOF the outcome cell
// decides what the caller sees:
//
//   - Unset or Closed: io.EOF (ordinary end-of-stream)
//   - Failed: the payload given to Guard.Blow, verbatim
//   - Aborted: ErrAborted
//
// The cell is immutable once terminal, so repeated reads at
// end-of-stream keep reporting the same classification. An io.EOF
// observed while the cell is still Unset is benign: the guard has not
// been disposed yet, and the producer avoids the window by holding the
// guard until its writes are flushed.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.inner.Read(p)
	if err == io.EOF {
		if cerr := r.cell.classify(); cerr != nil {
			return n, cerr
		}
	}
	return n, err
}

// Err returns the terminal classification error: nil while the outcome
// is Unset or Closed, the Blow payload for Failed, ErrAborted for
// Aborted. It is meaningful once Read has reported end-of-stream.
func (r *Reader) Err() error {
	return r.cell.classify()
}

// Outcome returns the current cell value without blocking.
func (r *Reader) Outcome() Outcome {
	return r.cell.load()
}

// Armed reports whether an armed guard is still outstanding.
//
// It returns (true, nil) while the producer holds the guard,
// (false, nil) when the fuse was never armed or the guard was disposed
// on ordinary control flow, and (false, err) when the producer
// aborted or blew the fuse, with err the same classification Read
// surfaces at end-of-stream.
func (r *Reader) Armed() (bool, error) {
	if r.cell.armed.Load() == 0 {
		return false, nil
	}
	switch r.cell.load() {
	case Unset:
		return true, nil
	case Closed:
		return false, nil
	default:
		return false, r.cell.classify()
	}
}

// Unwrap returns the inner reader.
func (r *Reader) Unwrap() io.Reader {
	return r.inner
}

// Serial returns the serial number assigned to this fuse pair.
func (r *Reader) Serial() Serial {
	return r.serial
}
