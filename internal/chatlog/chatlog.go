// Package chatlog appends one CSV row per conversation turn and reads the
// log back for offline review.
package chatlog

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/samber/oops"
)

// TimeLayout is ISO-8601 with second precision.
const TimeLayout = "2006-01-02T15:04:05"

var header = []string{"timestamp", "scenario", "sentiment", "emotion", "user", "bot"}

type Record struct {
	Timestamp time.Time
	Scenario  string
	Sentiment string
	Emotion   string
	User      string
	Bot       string
}

func (r Record) row() []string {
	return []string{r.Timestamp.Format(TimeLayout), r.Scenario, r.Sentiment, r.Emotion, r.User, r.Bot}
}

// CSVLogger is safe for concurrent use. Each Append opens, writes and closes
// the file so external tools can rotate it.
type CSVLogger struct {
	mu   sync.Mutex
	path string
}

func NewCSVLogger(path string) *CSVLogger {
	return &CSVLogger{path: path}
}

func (l *CSVLogger) Path() string { return l.path }

func (l *CSVLogger) Append(_ context.Context, r Record) error {
	errb := oops.In("chatlog").With("path", l.path)

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return errb.Wrapf(err, "open log")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errb.Wrapf(err, "stat log")
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return errb.Wrapf(err, "write header")
		}
	}
	if err := w.Write(r.row()); err != nil {
		return errb.Wrapf(err, "write record")
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errb.Wrapf(err, "flush log")
	}
	return nil
}

// Close is a no-op kept so the logger can be released like other collaborators.
func (l *CSVLogger) Close() error { return nil }

// ReadFile loads every record of a log written by CSVLogger. Rows with a
// malformed timestamp keep a zero Timestamp.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, oops.In("chatlog").With("path", path).Wrapf(err, "open log")
	}
	defer f.Close()
	return Read(f)
}

func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	var out []Record
	first := true
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, oops.In("chatlog").Wrapf(err, "read log")
		}
		if first {
			first = false
			if row[0] == header[0] {
				continue
			}
		}
		ts, _ := time.ParseInLocation(TimeLayout, row[0], time.Local)
		out = append(out, Record{
			Timestamp: ts,
			Scenario:  row[1],
			Sentiment: row[2],
			Emotion:   row[3],
			User:      row[4],
			Bot:       row[5],
		})
	}
}
