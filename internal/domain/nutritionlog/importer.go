package nutritionlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nutricancer/nutricancer/internal/domain/nutrient"
)

// ImportHeader is the required first row of a food log CSV export.
var ImportHeader = []string{"Date", "Meal", "Name", "Amount", "Calories", "Protein", "Carbs", "Fat", "Fiber"}

// ParseCSV reads food entries from r. Every row is validated; the first bad
// row aborts the parse with its line number.
func ParseCSV(r io.Reader) ([]FoodEntry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading header: empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) != len(ImportHeader) {
		return nil, fmt.Errorf("invalid header length: expected %d columns, got %d", len(ImportHeader), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != ImportHeader[i] {
			return nil, fmt.Errorf("invalid header: expected %s at position %d, got %s", ImportHeader[i], i, h)
		}
	}

	var entries []FoodEntry
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		line, _ := cr.FieldPos(0)

		entry, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseRecord(record []string) (FoodEntry, error) {
	var values [5]float64
	for i, col := range record[4:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(col), 64)
		if err != nil {
			return FoodEntry{}, invalid(strings.ToLower(ImportHeader[4+i]), col, "must be a number")
		}
		values[i] = v
	}
	e := FoodEntry{
		Date:     strings.TrimSpace(record[0]),
		MealType: MealType(strings.ToLower(strings.TrimSpace(record[1]))),
		Name:     strings.TrimSpace(record[2]),
		Amount:   strings.TrimSpace(record[3]),
		Facts: nutrient.Facts{
			Calories: values[0],
			Protein:  values[1],
			Carbs:    values[2],
			Fat:      values[3],
			Fiber:    values[4],
		},
	}
	if err := e.Validate(); err != nil {
		return FoodEntry{}, err
	}
	return e, nil
}
