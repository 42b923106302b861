// SPDX-License-Identifier: MIT
package simulate

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/hadjar2027/ssj/config"
)

// ErrSink marks failures of the output side of a run.
var ErrSink = errors.New("simulate: sink")

// PathRecord is one generated path handed to a Sink.
// Values is row-major ((len(Times))·Dimension) and only valid during the call.
type PathRecord struct {
	Index     int
	Times     []float64
	Dimension int
	Values    []float64
}

// Sink consumes generated paths in order.
type Sink interface {
	WritePath(rec PathRecord) error
	Flush() error
}

// NewSink returns the writer for format ("csv" or "jsonl").
func NewSink(format string, w io.Writer, fingerprint string) (Sink, error) {
	switch format {
	case config.FormatCSV, "":
		return NewCSVSink(w), nil
	case config.FormatJSONL:
		return NewJSONLSink(w, fingerprint), nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrSink, format)
	}
}

// CSVSink writes one row per observation: path,step,t,x0..x{c-1}.
// The header is written before the first record.
type CSVSink struct {
	w      *csv.Writer
	header bool
	row    []string
}

var _ Sink = (*CSVSink)(nil)

// NewCSVSink wraps w.
func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w)}
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// WritePath implements Sink.
func (s *CSVSink) WritePath(rec PathRecord) error {
	c := rec.Dimension
	if !s.header {
		s.row = make([]string, 3+c)
		s.row[0], s.row[1], s.row[2] = "path", "step", "t"
		for i := 0; i < c; i++ {
			s.row[3+i] = "x" + strconv.Itoa(i)
		}
		if err := s.w.Write(s.row); err != nil {
			return fmt.Errorf("%w: %w", ErrSink, err)
		}
		s.header = true
	}
	if len(s.row) != 3+c {
		return fmt.Errorf("%w: dimension changed from %d to %d", ErrSink, len(s.row)-3, c)
	}

	idx := strconv.Itoa(rec.Index)
	for j, t := range rec.Times {
		s.row[0] = idx
		s.row[1] = strconv.Itoa(j)
		s.row[2] = formatFloat(t)
		for i := 0; i < c; i++ {
			s.row[3+i] = formatFloat(rec.Values[j*c+i])
		}
		if err := s.w.Write(s.row); err != nil {
			return fmt.Errorf("%w: %w", ErrSink, err)
		}
	}

	return nil
}

// Flush implements Sink.
func (s *CSVSink) Flush() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrSink, err)
	}

	return nil
}

// jsonlRecord is the wire form of one JSONL line.
type jsonlRecord struct {
	Fingerprint string      `json:"fingerprint,omitempty"`
	Path        int         `json:"path"`
	Times       []float64   `json:"times"`
	Values      [][]float64 `json:"values"`
}

// JSONLSink writes one JSON object per path.
type JSONLSink struct {
	bw          *bufio.Writer
	enc         *json.Encoder
	fingerprint string
}

var _ Sink = (*JSONLSink)(nil)

// NewJSONLSink wraps w; fingerprint is copied into every record when non-empty.
func NewJSONLSink(w io.Writer, fingerprint string) *JSONLSink {
	bw := bufio.NewWriter(w)

	return &JSONLSink{bw: bw, enc: json.NewEncoder(bw), fingerprint: fingerprint}
}

// WritePath implements Sink.
func (s *JSONLSink) WritePath(rec PathRecord) error {
	c := rec.Dimension
	values := make([][]float64, len(rec.Times))
	for j := range values {
		values[j] = rec.Values[j*c : (j+1)*c]
	}
	err := s.enc.Encode(jsonlRecord{
		Fingerprint: s.fingerprint,
		Path:        rec.Index,
		Times:       rec.Times,
		Values:      values,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSink, err)
	}

	return nil
}

// Flush implements Sink.
func (s *JSONLSink) Flush() error {
	if err := s.bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrSink, err)
	}

	return nil
}
