package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jekabolt/grbpwr-community/internal/dependency"
	"github.com/jekabolt/grbpwr-community/internal/entity"
)

// Config contains the record file settings.
type Config struct {
	Path string `mapstructure:"path"`
}

// RecordStore is an append-only flat file record book. One line per
// subscriber: quoted name, email and phone, comma-separated, with a trailing
// RFC3339 UTC timestamp.
type RecordStore struct {
	c *Config
}

// New returns an object implementing the Records interface backed by the
// record file at c.Path. The file is created on first append.
func New(c *Config) (dependency.Records, error) {
	if c.Path == "" {
		return nil, fmt.Errorf("incomplete config: %+v", c)
	}
	return &RecordStore{c: c}, nil
}

// AddSubscriber appends a single record line. The descriptor is opened with
// O_APPEND and the line goes out in one Write call, so concurrent appends
// from this process land as whole lines. There is no cross-process locking.
func (rs *RecordStore) AddSubscriber(ctx context.Context, sub entity.Subscriber) error {
	f, err := os.OpenFile(rs.c.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open record file: %w", err)
	}
	defer f.Close()

	ts := sub.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	line := fmt.Sprintf("%s,%s,%s,%s\n",
		quote(sub.Name), quote(sub.Email), quote(sub.Phone),
		ts.UTC().Format(time.RFC3339))
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to append subscriber: %w", err)
	}
	return nil
}

// ListSubscribers reads the record file back. A missing file is an empty
// record book, not an error.
func (rs *RecordStore) ListSubscribers(ctx context.Context) ([]entity.Subscriber, error) {
	f, err := os.Open(rs.c.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open record file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 4

	var subs []entity.Subscriber
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse record file: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, rec[3])
		if err != nil {
			return nil, fmt.Errorf("failed to parse record timestamp: %w", err)
		}
		subs = append(subs, entity.Subscriber{
			Name:      rec[0],
			Email:     rec[1],
			Phone:     rec[2],
			Timestamp: ts,
		})
	}
	return subs, nil
}

// quote wraps a field in double quotes, CSV-escaping any embedded quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
