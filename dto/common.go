package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt accepts a JSON number, a numeric string, or null. Anything
// unparseable leaves the value unset so normalization can apply the
// documented defaults instead of rejecting the payload.
type FlexInt struct {
	Value int
	Set   bool
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		f.Value = n
		f.Set = true
		return nil
	}
	if fl, err := strconv.ParseFloat(s, 64); err == nil {
		f.Value = int(fl)
		f.Set = true
	}
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value)
}

// Or returns the parsed value, or def when the field was absent or
// unparseable.
func (f FlexInt) Or(def int) int {
	if f.Set {
		return f.Value
	}
	return def
}

// IntValue wraps an int in a set FlexInt. Used when overlaying a partial
// update onto an existing record.
func IntValue(n int) FlexInt {
	return FlexInt{Value: n, Set: true}
}

// StringList accepts either a JSON array of strings or a single
// comma-joined string, the serialization the old admin UI used.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = arr
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = strings.Split(s, ",")
		return nil
	}
	return fmt.Errorf("expected an array of strings or a comma-joined string")
}

// UploadResult is the image host's answer for one stored file.
type UploadResult struct {
	URL      string `json:"url"`
	FileID   string `json:"fileId"`
	FilePath string `json:"filePath"`
}

// BatchUploadResponse reports a multi-file upload. Partial failure is the
// common case with many small files, so accepted and failed counts are
// returned instead of a hard error.
type BatchUploadResponse struct {
	URLs     []string `json:"urls"`
	Accepted int      `json:"accepted"`
	Failed   int      `json:"failed"`
	Rejected int      `json:"rejected"`
	Message  string   `json:"message"`
}
