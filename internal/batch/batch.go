// Package batch runs analysis requests read from JSON Lines input.
package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cognicore/nlplab/pkg/nlplab"
	"github.com/cognicore/nlplab/pkg/nlplab/internalerr"
)

// maxLine bounds a single JSONL record.
const maxLine = 1 << 20

// Item is one request with its source line number.
type Item struct {
	Line    int
	Request nlplab.Request
}

// LoadFile reads requests from a JSONL file.
func LoadFile(path string, logger *zap.Logger) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	items, err := Load(f, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Load reads one request per line: {"op":"ner","text":"..."}.
// Blank lines are ignored; malformed lines are logged and skipped.
func Load(r io.Reader, logger *zap.Logger) ([]Item, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var items []Item
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		var req nlplab.Request
		if err := json.Unmarshal([]byte(text), &req); err != nil {
			logger.Warn("skipping malformed line", zap.Int("line", line), zap.Error(err))
			continue
		}
		if req.Op == "" {
			logger.Warn("skipping line without op", zap.Int("line", line))
			continue
		}
		items = append(items, Item{Line: line, Request: req})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", line+1, err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid requests: %w", internalerr.ErrInvalidInput)
	}
	return items, nil
}

// Outcome is written for every item: the result, or the error that stopped it.
type Outcome struct {
	Line   int            `json:"line"`
	Result *nlplab.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// Stats summarises a run.
type Stats struct {
	OK     int
	Failed int
}

// Run analyzes every item in order and writes one JSON outcome per line to w.
// Per-item errors are reported in the output; Run stops only when ctx ends or
// writing fails.
func Run(ctx context.Context, engine *nlplab.Engine, items []Item, w io.Writer) (Stats, error) {
	enc := json.NewEncoder(w)
	var stats Stats
	for _, it := range items {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		out := Outcome{Line: it.Line}
		res, err := engine.Analyze(ctx, it.Request)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			out.Error = err.Error()
			stats.Failed++
		} else {
			out.Result = &res
			stats.OK++
		}

		if err := enc.Encode(out); err != nil {
			return stats, fmt.Errorf("write line %d: %w", it.Line, err)
		}
	}
	return stats, nil
}
