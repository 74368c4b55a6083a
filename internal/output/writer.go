package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessctrl-go/internal/config"
	"github.com/lgbarn/chessctrl-go/internal/worker"
)

// AnalysisWriter is the interface for writing batch analysis results.
// Different implementations handle different output formats (text, JSON).
type AnalysisWriter interface {
	// WriteResult writes a single analysed position.
	WriteResult(res worker.ProcessResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewAnalysisWriter returns the writer selected by cfg.Output.JSONFormat
// and cfg.Output.JSONLines.
func NewAnalysisWriter(w io.Writer, cfg *config.Config) AnalysisWriter {
	if cfg.Output.JSONFormat {
		if cfg.Output.JSONLines {
			return NewJSONWriterSingle(w)
		}
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes one line per analysed position.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteResult writes a result line such as
// "positions.fen:3: White plays D1-D7 taking Black's Queen (score 100, 31 nodes)".
func (tw *TextWriter) WriteResult(res worker.ProcessResult) error {
	var err error
	switch {
	case res.Error != nil:
		_, err = fmt.Fprintf(tw.w, "%s: error: %v\n", res.Label, res.Error)
	case !res.Found:
		_, err = fmt.Fprintf(tw.w, "%s: %v has no move\n", res.Label, res.Side)
	default:
		capture := ""
		if !res.Move.Captured.IsEmpty() {
			capture = " taking " + res.Move.Captured.String()
		}
		_, err = fmt.Fprintf(tw.w, "%s: %v plays %v%s (score %d, %d nodes)\n",
			res.Label, res.Side, res.Move.Move(), capture, res.Move.Score, res.Move.Nodes)
	}
	return err
}

// Flush is a no-op; lines are written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	results []*JSONAnalysis
	single  bool // If true, write each result immediately instead of batching
	written bool // A batch document has been written
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each result
// immediately as one compact object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteResult buffers a result for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteResult(res worker.ProcessResult) error {
	ja := ResultToJSON(res)
	if jw.single {
		return json.NewEncoder(jw.w).Encode(ja)
	}
	jw.results = append(jw.results, ja)
	return nil
}

// Flush writes all buffered results as a JSON array. The first flush
// always writes a document, so a run with no results still produces
// {"positions": []}.
func (jw *JSONWriter) Flush() error {
	if jw.single || (jw.written && len(jw.results) == 0) {
		return nil
	}

	positions := jw.results
	if positions == nil {
		positions = []*JSONAnalysis{}
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Positions: positions})
	jw.written = true

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
