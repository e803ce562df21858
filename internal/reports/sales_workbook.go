// Package reports builds the exported sales-ledger document. The export is a
// spreadsheet workbook: one row per ledger entry plus a totals row.
package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/retailcore/branch_retail_app/internal/core/domain"
	"github.com/retailcore/branch_retail_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sales"

var headers = []string{"Sale ID", "Product ID", "Product", "Category", "Branch", "Quantity", "Final Price", "Sold At"}

// WriteSalesWorkbook renders the ledger snapshot into a timestamped workbook
// under dir and returns the file path.
func WriteSalesWorkbook(dir string, sales []domain.SaleRecord) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}

	f, err := buildSalesWorkbook(sales)
	if err != nil {
		return "", err
	}
	defer f.Close()

	path := filepath.Join(dir, fmt.Sprintf("sales_report_%s.xlsx", time.Now().UTC().Format("20060102_150405")))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save sales report: %w", err)
	}
	return path, nil
}

func buildSalesWorkbook(sales []domain.SaleRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	total := decimal.Zero
	for i, sale := range sales {
		row := i + 2
		values := []any{
			sale.SaleID,
			sale.ProductID,
			sale.Name,
			sale.Category,
			sale.BranchID,
			sale.Quantity,
			utils.FormatPrice(sale.FinalPrice),
			sale.SoldAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
		total = total.Add(sale.FinalPrice)
	}

	totalRow := len(sales) + 2
	totalLabelCell, _ := excelize.CoordinatesToCellName(6, totalRow)
	totalValueCell, _ := excelize.CoordinatesToCellName(7, totalRow)
	if err := f.SetCellValue(sheetName, totalLabelCell, "Total"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, totalValueCell, utils.FormatPrice(total)); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(sheetName, totalLabelCell, totalValueCell, headerStyle)
	_ = f.SetColWidth(sheetName, "A", "H", 22)

	return f, nil
}
