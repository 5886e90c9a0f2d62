// Copyright (C) 2026 NZTC Labs (engineering@nztclabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// TechnologyRecord is one row of the technology database, ready for
// embedding and indexing.
type TechnologyRecord struct {
	TechID      string
	Title       string
	Provider    string
	Description string
	TRL         int
	Category    string
	SubCategory string
}

// DocumentText renders the record as the text that gets embedded. Matches
// the representation search queries are compared against.
func (r TechnologyRecord) DocumentText() string {
	return fmt.Sprintf(
		"Technology: %s\nProvider: %s\nDescription: %s\nCategory: %s\nSub-Category: %s\nTRL: %d",
		r.Title, r.Provider, r.Description, r.Category, r.SubCategory, r.TRL)
}

// normalizeHeader maps a raw CSV header to a canonical column name, so
// exports like "Technology Provider" and "provider" both work.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "-", " ")
	h = strings.Join(strings.Fields(h), "_")
	switch h {
	case "technology_provider":
		return "provider"
	case "technology_description":
		return "description"
	case "sub_category", "subcategory":
		return "sub_category"
	case "does_the_technology_still_exist?", "still_exists", "exists":
		return "still_exists"
	}
	return h
}

func isAffirmative(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true":
		return true
	}
	return false
}

// ParseTechnologyCSV reads technology records from a CSV export of the
// technology database.
//
// The header row is required and matched case-insensitively; title,
// provider and description columns are mandatory. Rows with an empty title
// are skipped, as are rows whose still_exists column (when present) is not
// affirmative — the catalog only indexes technologies that still exist.
// TechIDs follow the row order of the surviving records ("tech_0",
// "tech_1", ...), matching the IDs the generation prompt exposes.
func ParseTechnologyCSV(r io.Reader) ([]TechnologyRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[normalizeHeader(h)] = i
	}
	for _, required := range []string{"title", "provider", "description"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("CSV is missing required column %q", required)
		}
	}

	field := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var records []TechnologyRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read CSV line %d: %w", line, err)
		}

		if title := field(row, "title"); title == "" {
			slog.Debug("Skipping CSV row with empty title", "line", line)
			continue
		}
		if _, hasExists := cols["still_exists"]; hasExists && !isAffirmative(field(row, "still_exists")) {
			continue
		}

		trl := 0
		if rawTRL := field(row, "trl"); rawTRL != "" {
			trl, err = strconv.Atoi(rawTRL)
			if err != nil || trl < 1 || trl > 9 {
				slog.Warn("Ignoring out-of-range TRL", "line", line, "trl", rawTRL)
				trl = 0
			}
		}

		records = append(records, TechnologyRecord{
			TechID:      fmt.Sprintf("tech_%d", len(records)),
			Title:       field(row, "title"),
			Provider:    field(row, "provider"),
			Description: field(row, "description"),
			TRL:         trl,
			Category:    field(row, "category"),
			SubCategory: field(row, "sub_category"),
		})
	}
	return records, nil
}
