package endpoints

import (
	"encoding/json"
	"fmt"
)

// tabularResponse is the wire envelope most NBA Stats endpoints answer
// with: a list of named tables, each a header row plus value rows.
//
//	{
//	  "resource": "scoreboardv2",
//	  "resultSets": [
//	    {"name": "GameHeader", "headers": ["GAME_ID", ...], "rowSet": [[...], ...]}
//	  ]
//	}
type tabularResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	RowSet  [][]interface{} `json:"rowSet"`
}

func decodeTabular(data []byte) (*tabularResponse, error) {
	var resp tabularResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decoding resultSets envelope: %w", err)
	}
	if resp.ResultSets == nil {
		return nil, fmt.Errorf("payload has no resultSets")
	}
	return &resp, nil
}

// set returns the result set with the given name.
func (r *tabularResponse) set(name string) (*resultSet, error) {
	for i := range r.ResultSets {
		if r.ResultSets[i].Name == name {
			return &r.ResultSets[i], nil
		}
	}
	return nil, fmt.Errorf("result set %q not present in payload", name)
}

// rows zips headers with each row, validating row width against the header
// count the way the API promises them to match.
func (s *resultSet) rows() ([]map[string]interface{}, error) {
	out := make([]map[string]interface{}, 0, len(s.RowSet))
	for i, row := range s.RowSet {
		if len(row) != len(s.Headers) {
			return nil, fmt.Errorf("result set %q row %d has %d values for %d headers",
				s.Name, i, len(row), len(s.Headers))
		}
		m := make(map[string]interface{}, len(s.Headers))
		for j, h := range s.Headers {
			m[h] = row[j]
		}
		out = append(out, m)
	}
	return out, nil
}

// Row value accessors. The API mixes strings, numbers and nulls freely
// inside rowSet arrays, so these are tolerant of both absence and null.

func rowString(row map[string]interface{}, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}

func rowInt(row map[string]interface{}, key string) int {
	if v, ok := row[key].(float64); ok {
		return int(v)
	}
	return 0
}

func rowFloat(row map[string]interface{}, key string) float64 {
	if v, ok := row[key].(float64); ok {
		return v
	}
	return 0
}
