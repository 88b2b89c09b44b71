package models

import (
	"encoding/json"
	"time"
)

// ISOTimeFormat is used for timestamps in frame and series indexes.
const ISOTimeFormat = "2006-01-02T15:04:05.000Z"

// Frame is a column-oriented table serialized in "split" orientation:
// {"columns": [...], "index": [...], "data": [[row0...], [row1...]]}.
// This matches the row/column interchange encoding consumed by agent
// clients for tabular market data.
// Index labels are strings for date- and name-indexed frames and ints for
// positionally indexed ones, matching how each serializes upstream.
type Frame struct {
	Columns []string        `json:"columns"`
	Index   []interface{}   `json:"index"`
	Data    [][]interface{} `json:"data"`
}

// NewFrame creates an empty frame with the given column labels.
func NewFrame(columns ...string) *Frame {
	return &Frame{
		Columns: columns,
		Index:   []interface{}{},
		Data:    [][]interface{}{},
	}
}

// AppendRow adds a row with the given index label. Rows shorter than the
// column set are padded with nulls.
func (f *Frame) AppendRow(index interface{}, values ...interface{}) {
	row := make([]interface{}, len(f.Columns))
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		}
	}
	f.Index = append(f.Index, index)
	f.Data = append(f.Data, row)
}

// Empty reports whether the frame holds no rows.
func (f *Frame) Empty() bool {
	return f == nil || len(f.Data) == 0
}

// ToJSON serializes the frame to its split-orientation JSON string.
func (f *Frame) ToJSON() (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Series is a single labeled column serialized in "split" orientation:
// {"name": ..., "index": [...], "data": [...]}.
type Series struct {
	Name  string        `json:"name"`
	Index []string      `json:"index"`
	Data  []interface{} `json:"data"`
}

// NewSeries creates an empty named series.
func NewSeries(name string) *Series {
	return &Series{
		Name:  name,
		Index: []string{},
		Data:  []interface{}{},
	}
}

// Append adds a value with the given index label.
func (s *Series) Append(index string, value interface{}) {
	s.Index = append(s.Index, index)
	s.Data = append(s.Data, value)
}

// Empty reports whether the series holds no values.
func (s *Series) Empty() bool {
	return s == nil || len(s.Data) == 0
}

// ToJSON serializes the series to its split-orientation JSON string.
func (s *Series) ToJSON() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ISOTime formats a timestamp for use as a frame/series index label.
func ISOTime(t time.Time) string {
	return t.UTC().Format(ISOTimeFormat)
}
