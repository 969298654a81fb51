package inference

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ResponseShape identifies which of the accepted payload shapes the
// endpoint returned.
type ResponseShape int

const (
	ShapeList   ResponseShape = iota // [{"summary_text": "..."}]
	ShapeRecord                      // {"summary_text": "..."}
	ShapeRaw                         // "..." or any other JSON value
)

// Record is one summarization output record.
type Record struct {
	SummaryText string `json:"summary_text"`
	Error       string `json:"error,omitempty"`
}

// Response is a decoded summarization payload.
type Response struct {
	Shape   ResponseShape
	Records []Record
	Raw     string
}

// DecodeResponse classifies body into one of the response shapes.
// An empty list and a record carrying an "error" field are errors.
func DecodeResponse(body []byte) (Response, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Response{}, errors.New("empty response body")
	}

	switch body[0] {
	case '[':
		var records []Record
		if err := json.Unmarshal(body, &records); err != nil {
			return Response{}, fmt.Errorf("decoding response list: %w", err)
		}
		if len(records) == 0 {
			return Response{}, errors.New("response list is empty")
		}
		if records[0].Error != "" {
			return Response{}, errors.New(records[0].Error)
		}
		return Response{Shape: ShapeList, Records: records}, nil
	case '{':
		var record Record
		if err := json.Unmarshal(body, &record); err != nil {
			return Response{}, fmt.Errorf("decoding response record: %w", err)
		}
		if record.Error != "" {
			return Response{}, errors.New(record.Error)
		}
		return Response{Shape: ShapeRecord, Records: []Record{record}}, nil
	case '"':
		var s string
		if err := json.Unmarshal(body, &s); err != nil {
			return Response{}, fmt.Errorf("decoding response string: %w", err)
		}
		return Response{Shape: ShapeRaw, Raw: s}, nil
	default:
		return Response{Shape: ShapeRaw, Raw: string(body)}, nil
	}
}

// Text returns the summary text carried by the response. For a list only
// the first record counts.
func (r Response) Text() string {
	switch r.Shape {
	case ShapeList, ShapeRecord:
		if len(r.Records) == 0 {
			return ""
		}
		return r.Records[0].SummaryText
	default:
		return r.Raw
	}
}
