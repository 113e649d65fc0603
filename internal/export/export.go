// Package export renders finance records for a date range into
// downloadable PDF and Excel documents.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/cofrinho/backend/internal/currency"
	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/types"
	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

var (
	ErrRangeIncomplete = errors.New("both the start and the end of the period are required")
	ErrRangeInverted   = errors.New("the start of the period must not be after its end")
	ErrNoRecords       = errors.New("there are no finance records in the requested period")
)

var columns = []string{"Título", "Tipo", "Status", "Categoria", "Valor", "Vencimento", "Pagamento"}

// InRange returns the records whose effective date falls inside the
// inclusive [from, until] period. Records without any date do not appear
// in exports.
func InRange(records []models.Finance, from, until types.Date) ([]models.Finance, error) {
	if from.IsZero() || until.IsZero() {
		return nil, ErrRangeIncomplete
	}

	if from.After(until) {
		return nil, ErrRangeInverted
	}

	var out []models.Finance
	for _, record := range records {
		date, ok := record.RecordDate()
		if !ok || date.Before(from) || date.After(until) {
			continue
		}
		out = append(out, record)
	}

	if len(out) == 0 {
		return nil, ErrNoRecords
	}

	return out, nil
}

func displayDate(date *types.Date) string {
	if date == nil {
		return ""
	}

	return time.Time(*date).Format("02/01/2006")
}

// PDF renders the records in the period as a table in an A4 document.
func PDF(records []models.Finance, from, until types.Date) ([]byte, error) {
	records, err := InRange(records, from, until)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr("Histórico de Registros Financeiros"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Período: %s a %s", displayDate(&from), displayDate(&until))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	widths := []float64{70, 25, 25, 45, 30, 30, 30}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, column := range columns {
		pdf.CellFormat(widths[i], 8, tr(column), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, record := range records {
		cells := []string{
			record.Title,
			string(record.Type),
			string(record.Status),
			record.Category,
			currency.Format(record.Value),
			displayDate(record.DueDate),
			displayDate(record.PaymentDate),
		}

		for i, cell := range cells {
			align := "L"
			if i >= 4 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 7, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Excel renders the records in the period as a single-sheet workbook.
func Excel(records []models.Finance, from, until types.Date) ([]byte, error) {
	records, err := InRange(records, from, until)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	const sheet = "Registros"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	for i, column := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, column); err != nil {
			return nil, err
		}
	}

	for row, record := range records {
		cells := []any{
			record.Title,
			string(record.Type),
			string(record.Status),
			record.Category,
			currency.Format(record.Value),
			displayDate(record.DueDate),
			displayDate(record.PaymentDate),
		}

		for i, value := range cells {
			cell, err := excelize.CoordinatesToCellName(i+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
