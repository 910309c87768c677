package export

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/algoport/algoport/internal/domain"
)

// Report is the classified-portfolio view handed to the XLSX writer.
type Report struct {
	Snapshot   domain.AccountSnapshot
	Classified domain.ClassifiedAccount
	Valuation  domain.PortfolioValuation
	At         time.Time
}

const sheetName = "Portfolio"

// WriteXLSX renders a portfolio report to an XLSX file.
// Columns: Asset ID | Name | Unit | Class | Amount | Estimated USD.
func WriteXLSX(path string, report Report) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheetName)

	rows := buildRows(report)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("computing cell for row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving report to %s: %w", path, err)
	}
	return nil
}

// buildRows lays out the report: header block, native balance, held
// assets, then created assets.
func buildRows(report Report) [][]any {
	rows := [][]any{
		{"Account", report.Snapshot.Address},
		{"Generated", report.At.UTC().Format(time.RFC3339)},
		{"ALGO balance", report.Valuation.AlgoBalance.String()},
		{"ALGO value (USD)", report.Valuation.AlgoValueUSD.String()},
		{"Assets estimate (USD)", report.Valuation.AssetsEstUSD.String()},
		{"Total estimate (USD)", report.Valuation.TotalUSD.String()},
		{},
		{"Asset ID", "Name", "Unit", "Class", "Amount", "Relationship"},
	}

	held := lo.Map(report.Classified.Held, func(a domain.ClassifiedAsset, _ int) []any {
		return assetRow(a, "held")
	})
	created := lo.Map(report.Classified.Created, func(a domain.ClassifiedAsset, _ int) []any {
		return assetRow(a, "created")
	})

	rows = append(rows, held...)
	rows = append(rows, created...)
	return rows
}

func assetRow(a domain.ClassifiedAsset, relationship string) []any {
	return []any{a.AssetID, a.Name, a.UnitName, string(a.Class), a.Amount, relationship}
}
