// Package report выгрузка долгов поставщика в xlsx.
package report

import (
	"fmt"
	"io"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	dueSheet   = "Dues"
	dateLayout = "2006-01-02"
)

var dueHeader = []string{
	"ID", "Retailer", "Retailer phone", "Description", "Amount", "Purchase date", "Due date", "Status", "Created at",
}

// WriteDues пишет книгу xlsx с одним листом: заголовок и строка на каждый долг. Сумма записывается числом.
func WriteDues(w io.Writer, dues []domain.DueEntry) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName("Sheet1", dueSheet); err != nil {
		return fmt.Errorf("dues workbook: %w", err)
	}

	for i, h := range dueHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("dues workbook: %w", err)
		}
		if err = f.SetCellValue(dueSheet, cell, h); err != nil {
			return fmt.Errorf("dues workbook: %w", err)
		}
	}

	for i, d := range dues {
		amount, _ := d.Amount.Float64()
		row := []any{
			d.ID,
			d.RetailerName,
			d.RetailerPhone,
			d.Description,
			amount,
			d.PurchaseDate.Format(dateLayout),
			d.DueDate.Format(dateLayout),
			string(d.Status),
			d.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("dues workbook: %w", err)
		}
		if err = f.SetSheetRow(dueSheet, cell, &row); err != nil {
			return fmt.Errorf("dues workbook row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("dues workbook: %w", err)
	}
	return nil
}
