package cases

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record mirrors one entry of the "cases" array returned by the case endpoint.
type Record struct {
	ID                 int64   `json:"id"`
	Title              string  `json:"title"`
	Organization       string  `json:"organization"`
	Description        string  `json:"description"`
	ImplementationYear int     `json:"implementationYear"`
	RulesGenerated     int     `json:"rulesGenerated"`
	EfficiencyIncrease float64 `json:"efficiencyIncrease"`
	StaffCount         int     `json:"staffCount"`
	DurationMonths     int     `json:"durationMonths"`
	Status             string  `json:"status"`
}

// ListResponse mirrors the endpoint payload. Cases is nil when the field is
// absent or null.
type ListResponse struct {
	Cases []Record `json:"cases"`
}

// Decode parses an endpoint body. A missing "cases" field yields an empty,
// non-nil slice rather than an error.
func Decode(r io.Reader) ([]Record, error) {
	var payload ListResponse
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if payload.Cases == nil {
		return []Record{}, nil
	}
	return payload.Cases, nil
}

// DuplicateIDs returns identifiers that appear more than once, in order of
// their second occurrence.
func DuplicateIDs(records []Record) []int64 {
	seen := make(map[int64]int, len(records))
	var dups []int64
	for _, rec := range records {
		seen[rec.ID]++
		if seen[rec.ID] == 2 {
			dups = append(dups, rec.ID)
		}
	}
	return dups
}

// RulesLabel formats the generated rule count with a leading plus sign.
func (r Record) RulesLabel() string {
	return "+" + strconv.Itoa(r.RulesGenerated)
}

// EfficiencyLabel formats the efficiency gain as a signed percentage, dropping
// a trailing ".0".
func (r Record) EfficiencyLabel() string {
	value := strconv.FormatFloat(r.EfficiencyIncrease, 'f', 1, 64)
	value = strings.TrimSuffix(value, ".0")
	if r.EfficiencyIncrease >= 0 {
		value = "+" + value
	}
	return value + "%"
}

// DisplayTitle falls back to the identifier for untitled records.
func (r Record) DisplayTitle() string {
	if title := strings.TrimSpace(r.Title); title != "" {
		return title
	}
	return fmt.Sprintf("#%d", r.ID)
}
