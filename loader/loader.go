package loader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/viant/wordvec/store"
)

// Format selects the input encoding of an embedding file.
type Format string

const (
	// FormatAuto inspects the first line: a comma anywhere selects CSV,
	// otherwise whitespace-delimited GloVe text is assumed.
	FormatAuto Format = "auto"

	// FormatGloVe is one token followed by D whitespace-separated floats per
	// line, as produced by the GloVe and word2vec text exporters.
	FormatGloVe Format = "glove"

	// FormatCSV is one token followed by D comma-separated floats per record,
	// with an optional header row.
	FormatCSV Format = "csv"
)

// Options configures ReadAll.
type Options struct {
	// Format of the input; FormatAuto when zero.
	Format Format

	// Progress, when non-nil, is invoked once per parsed row with the running
	// row count. Useful for wiring a progress bar over large files.
	Progress func(rows int)
}

// ReadAll parses an embedding file into rows suitable for store.Build. It
// does not normalize or validate vector geometry; that is Build's job. Blank
// lines are skipped, and a CSV header row (second field not numeric) is
// detected and dropped automatically.
func ReadAll(r io.Reader, opts Options) ([]store.Row, error) {
	format := opts.Format
	if format == "" {
		format = FormatAuto
	}
	br := bufio.NewReader(r)
	if format == FormatAuto {
		detected, err := detectFormat(br)
		if err != nil {
			return nil, err
		}
		format = detected
	}
	switch format {
	case FormatGloVe:
		return readGloVe(br, opts.Progress)
	case FormatCSV:
		return readCSV(br, opts.Progress)
	default:
		return nil, fmt.Errorf("loader: unsupported format %q", format)
	}
}

// detectFormat peeks at the input without consuming it. A comma in the first
// kilobyte's first line indicates CSV.
func detectFormat(br *bufio.Reader) (Format, error) {
	peek, err := br.Peek(1024)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return "", fmt.Errorf("loader: detect format: %w", err)
	}
	line := string(peek)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.Contains(line, ",") {
		return FormatCSV, nil
	}
	return FormatGloVe, nil
}

func readGloVe(r io.Reader, progress func(int)) ([]store.Row, error) {
	var rows []store.Row
	scanner := bufio.NewScanner(r)
	// GloVe lines for 300-dim vectors run a few kilobytes; allow up to 1MiB.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("loader: line %d: token %q has no vector components", lineNo, fields[0])
		}
		vec, err := parseComponents(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("loader: line %d: %w", lineNo, err)
		}
		rows = append(rows, store.Row{Token: fields[0], Vector: vec})
		if progress != nil {
			progress(len(rows))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}
	return rows, nil
}

func readCSV(r io.Reader, progress func(int)) ([]store.Row, error) {
	var rows []store.Row
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	recordNo := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
		recordNo++
		if len(record) < 2 {
			return nil, fmt.Errorf("loader: record %d: token %q has no vector components", recordNo, record[0])
		}
		vec, err := parseComponents(record[1:])
		if err != nil {
			if recordNo == 1 {
				// Header row: the second field is not numeric.
				continue
			}
			return nil, fmt.Errorf("loader: record %d: %w", recordNo, err)
		}
		rows = append(rows, store.Row{Token: record[0], Vector: vec})
		if progress != nil {
			progress(len(rows))
		}
	}
	return rows, nil
}

func parseComponents(fields []string) ([]float32, error) {
	vec := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nil, fmt.Errorf("component %d: invalid number %q", i+1, f)
		}
		vec[i] = float32(v)
	}
	return vec, nil
}
