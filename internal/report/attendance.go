package report

import (
	"bytes"
	"fmt"
	"time"

	"dayflow/internal/model"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Attendance"

var statusCodes = map[string]string{
	model.StatusPresent: "P",
	model.StatusAbsent:  "A",
	model.StatusHalfDay: "H",
	model.StatusLeave:   "L",
}

func DaysInMonth(month int, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthlyAttendance builds a workbook with one row per employee and one
// column per day of the month, followed by per-code totals.
func MonthlyAttendance(month int, year int, employees []model.User, records []model.Attendance) (*bytes.Buffer, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month %d", month)
	}

	byUser := make(map[string]map[string]string)
	for _, r := range records {
		if _, ok := byUser[r.UserID]; !ok {
			byUser[r.UserID] = make(map[string]string)
		}
		byUser[r.UserID][r.Date] = statusCodes[r.Status]
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, err
	}

	days := DaysInMonth(month, year)
	header := []interface{}{"Employee ID", "Name"}
	for d := 1; d <= days; d++ {
		header = append(header, d)
	}
	header = append(header, "P", "A", "H", "L")
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", bold); err != nil {
		return nil, err
	}

	for i, emp := range employees {
		row := []interface{}{emp.EmployeeID, emp.Name}
		totals := map[string]int{"P": 0, "A": 0, "H": 0, "L": 0}
		for d := 1; d <= days; d++ {
			date := fmt.Sprintf("%04d-%02d-%02d", year, month, d)
			code := byUser[emp.ID][date]
			if code != "" {
				totals[code]++
			}
			row = append(row, code)
		}
		row = append(row, totals["P"], totals["A"], totals["H"], totals["L"])

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheetName, "B", "B", 24); err != nil {
		return nil, err
	}
	return f.WriteToBuffer()
}
