package extractor

import (
	"encoding/json"
	"fmt"

	"github.com/Matheus-F-Scatolin/ai-fellowship-project-matheus-scatolin/pkg/formatting"
)

// Result is one completed extraction: the extracted fields in the order
// the service emitted them, plus the performance metadata describing how
// the extraction was produced.
type Result struct {
	Data     *formatting.Object
	Metadata Metadata
}

// Metadata mirrors the metadata block of a successful response.
type Metadata struct {
	RequestTime  float64  `json:"request_time"`
	FileName     string   `json:"file_name"`
	FileSize     int64    `json:"file_size"`
	Label        string   `json:"label"`
	SchemaFields []string `json:"schema_fields"`
	Pipeline     Pipeline `json:"_pipeline"`
}

// Pipeline identifies the strategy chain that produced the result.
type Pipeline struct {
	Method string   `json:"method"`
	Steps  []string `json:"steps"`
}

// JSON renders the metadata as indented JSON for display.
func (m Metadata) JSON() string {
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "{}"
	}

	return string(out)
}

// Health is the service liveness report.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type extractResponse struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data"`
	Metadata Metadata        `json:"metadata"`
}

// decodeResult interprets a success response body. The data block is
// decoded through formatting.DecodeObject so field order survives.
func decodeResult(body []byte) (*Result, error) {
	var resp extractResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("decode response: missing data block")
	}

	data, err := formatting.DecodeObject(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("decode response data: %w", err)
	}

	return &Result{Data: data, Metadata: resp.Metadata}, nil
}
