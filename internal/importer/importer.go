package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shotput/boxpacker/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the outcome of an import operation: the items that
// parsed cleanly, plus any row-level errors and non-fatal warnings.
type ImportResult struct {
	Items    []model.ItemRequest
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in a row.
type ColumnMapping struct {
	Label         int
	Width         int
	Length        int
	Height        int
	Weight        int
	Quantity      int
	DimensionUnit int
	MassUnit      int
}

var headerAliases = map[string][]string{
	"label":          {"label", "name", "item", "description", "desc", "sku"},
	"width":          {"width", "w"},
	"length":         {"length", "len", "l", "depth", "d"},
	"height":         {"height", "h"},
	"weight":         {"weight", "wt", "mass"},
	"quantity":       {"quantity", "qty", "count", "num", "amount", "pcs", "pieces"},
	"dimension_unit": {"dimension_unit", "dim_unit", "unit", "units"},
	"mass_unit":      {"mass_unit", "weight_unit"},
}

// DetectCSVDelimiter reads the raw file content and picks the delimiter
// (comma, semicolon, tab, pipe) that produces the most consistent
// column count across rows.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	best := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			best = delim
		}
	}

	return best
}

// DetectColumns examines a header row against the known aliases and
// returns a mapping, or a default positional mapping (label, width,
// length, height, weight, quantity, dimension unit, mass unit) with
// false if no header was recognized.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, Width: -1, Length: -1, Height: -1, Weight: -1, Quantity: -1, DimensionUnit: -1, MassUnit: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "label":
					setIfUnset(&mapping.Label, i)
				case "width":
					setIfUnset(&mapping.Width, i)
				case "length":
					setIfUnset(&mapping.Length, i)
				case "height":
					setIfUnset(&mapping.Height, i)
				case "weight":
					setIfUnset(&mapping.Weight, i)
				case "quantity":
					setIfUnset(&mapping.Quantity, i)
				case "dimension_unit":
					setIfUnset(&mapping.DimensionUnit, i)
				case "mass_unit":
					setIfUnset(&mapping.MassUnit, i)
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{
			Label: 0, Width: 1, Length: 2, Height: 3, Weight: 4, Quantity: 5,
			DimensionUnit: 6, MassUnit: 7,
		}, false
	}

	return mapping, true
}

func setIfUnset(field *int, i int) {
	if *field == -1 {
		*field = i
	}
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseRow(row []string, mapping ColumnMapping, rowLabel string, itemCount int) (model.ItemRequest, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Item %d", itemCount+1)
	}

	width, errMsg := parseRequiredFloat(row, mapping.Width, "width", rowLabel)
	if errMsg != "" {
		return model.ItemRequest{}, errMsg
	}
	length, errMsg := parseRequiredFloat(row, mapping.Length, "length", rowLabel)
	if errMsg != "" {
		return model.ItemRequest{}, errMsg
	}
	height, errMsg := parseRequiredFloat(row, mapping.Height, "height", rowLabel)
	if errMsg != "" {
		return model.ItemRequest{}, errMsg
	}
	weight, errMsg := parseRequiredFloat(row, mapping.Weight, "weight", rowLabel)
	if errMsg != "" {
		return model.ItemRequest{}, errMsg
	}

	qtyStr := getCell(row, mapping.Quantity)
	quantity := 1
	if qtyStr != "" {
		q, err := strconv.Atoi(qtyStr)
		if err != nil {
			return model.ItemRequest{}, fmt.Sprintf("%s: invalid quantity %q", rowLabel, qtyStr)
		}
		quantity = q
	}

	if width <= 0 || length <= 0 || height <= 0 || weight <= 0 || quantity <= 0 {
		return model.ItemRequest{}, fmt.Sprintf("%s: width, length, height, weight, and quantity must all be positive", rowLabel)
	}

	return model.ItemRequest{
		ID:            label,
		Label:         label,
		Width:         width,
		Length:        length,
		Height:        height,
		Weight:        weight,
		DimensionUnit: getCell(row, mapping.DimensionUnit),
		MassUnit:      getCell(row, mapping.MassUnit),
		Quantity:      quantity,
	}, ""
}

func parseRequiredFloat(row []string, idx int, fieldName, rowLabel string) (float64, string) {
	raw := getCell(row, idx)
	if raw == "" {
		return 0, fmt.Sprintf("%s: missing %s value", rowLabel, fieldName)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: invalid %s %q", rowLabel, fieldName, raw)
	}
	return v, ""
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV reads an item manifest from a CSV file, auto-detecting the
// delimiter and mapping columns by header name.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open file: %v", err))
		return result
	}
	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "file is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		names := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}
		warnings = append(warnings, fmt.Sprintf("detected %s delimiter", names[delimiter]))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read CSV: %v", err))
		return result
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, "file is empty")
		return result
	}

	return importFromRows(records, "Line", warnings)
}

// ImportCSVFromReader reads an item manifest from r using a known
// delimiter, useful when the caller has already determined it.
func ImportCSVFromReader(r io.Reader, delimiter rune) ImportResult {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("cannot read CSV: %v", err)}}
	}
	if len(records) == 0 {
		return ImportResult{Errors: []string{"file is empty"}}
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel reads an item manifest from the first sheet of an Excel
// workbook, mapping columns by header name.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read Excel data: %v", err))
		return result
	}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "detected header row, skipping")

		var missing []string
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Length == -1 {
			missing = append(missing, "Length")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Weight == -1 {
			missing = append(missing, "Weight")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		item, errMsg := parseRow(row, mapping, rowLabel, len(result.Items))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Items = append(result.Items, item)
	}

	return result
}
