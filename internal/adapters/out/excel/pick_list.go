// Package excel renders the kitchen pick list as an XLSX workbook.
package excel

import (
	"fmt"
	"io"

	"schoollunch/internal/core/domain/model/kernel"
	"schoollunch/internal/core/domain/model/student"
	"schoollunch/internal/core/domain/services"
	"schoollunch/internal/core/ports"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the rendered workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	summarySheet  = "集計"
	receivedMark  = "済"
	firstDataRow  = 3
	dateCellTitle = "配達日"
)

var (
	summaryHeader = []any{"商品", "数量"}
	gradeHeader   = []any{"商品", "クラス", "名前", "数量", "受取", "他の注文"}
)

var _ ports.PickListRenderer = PickListRenderer{}

// PickListRenderer writes a summary sheet followed by one sheet per grade.
// Every grade gets a sheet even when it has no orders.
type PickListRenderer struct{}

func NewPickListRenderer() PickListRenderer {
	return PickListRenderer{}
}

func (PickListRenderer) Render(w io.Writer, deliveryDate kernel.Date, groups []services.OrderGroup, summary []services.DailySummary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if err := writeSummary(f, deliveryDate, summary); err != nil {
		return err
	}

	for grade := student.MinGrade; grade <= student.MaxGrade; grade++ {
		sheet := GradeSheetName(grade)
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := writeGrade(f, sheet, deliveryDate, grade, groups); err != nil {
			return fmt.Errorf("grade %d sheet: %w", grade, err)
		}
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

// GradeSheetName is the sheet title of one grade.
func GradeSheetName(grade int) string {
	return fmt.Sprintf("%d年", grade)
}

func writeSummary(f *excelize.File, deliveryDate kernel.Date, summary []services.DailySummary) error {
	if err := writeTitle(f, summarySheet, deliveryDate, summaryHeader); err != nil {
		return err
	}

	row := firstDataRow
	for _, day := range summary {
		if !day.DeliveryDate.Equal(deliveryDate) {
			continue
		}
		for _, p := range day.Products {
			if err := setRow(f, summarySheet, row, []any{p.ProductName, p.TotalQuantity}); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeGrade(f *excelize.File, sheet string, deliveryDate kernel.Date, grade int, groups []services.OrderGroup) error {
	if err := writeTitle(f, sheet, deliveryDate, gradeHeader); err != nil {
		return err
	}

	row := firstDataRow
	for _, g := range groups {
		if g.Grade != grade || !g.DeliveryDate.Equal(deliveryDate) {
			continue
		}
		for _, e := range g.Entries {
			received := ""
			if e.IsReceived {
				received = receivedMark
			}
			values := []any{g.ProductName, e.StudentClassName, e.StudentName, e.Quantity, received, e.OtherOrders}
			if err := setRow(f, sheet, row, values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeTitle(f *excelize.File, sheet string, deliveryDate kernel.Date, header []any) error {
	if err := setRow(f, sheet, 1, []any{dateCellTitle, deliveryDate.String()}); err != nil {
		return err
	}
	if err := setRow(f, sheet, 2, header); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      2,
		TopLeftCell: "A3",
		ActivePane:  "bottomLeft",
	})
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
