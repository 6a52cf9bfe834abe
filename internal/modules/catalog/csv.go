package catalog

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// csvRecord mirrors the etf_data.csv interchange format.
type csvRecord struct {
	Ticker                string  `csv:"ticker"`
	Name                  string  `csv:"name"`
	Category              string  `csv:"category"`
	RiskLevel             int     `csv:"risk_level"`
	DividendYield         float64 `csv:"dividend_yield"`
	ExpectedDividendYield float64 `csv:"expected_dividend_yield"`
	CAGR1Y                float64 `csv:"cagr_1y"`
	CAGR3Y                float64 `csv:"cagr_3y"`
	CAGR5Y                float64 `csv:"cagr_5y"`
	Volatility            float64 `csv:"volatility"`
	Beta                  float64 `csv:"beta"`
	MaxDrawdown           float64 `csv:"max_drawdown"`
	DividendQuality       float64 `csv:"dividend_quality"`
	DividendGrowth        float64 `csv:"dividend_growth"`
	DividendConsistency   float64 `csv:"dividend_consistency"`
}

// ImportCSV reads an asset universe from a CSV file. Unknown categories
// fail the import; missing statistics get defaults applied downstream.
func ImportCSV(path string) ([]Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog CSV: %w", err)
	}
	defer f.Close()

	var records []csvRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog CSV: %w", err)
	}

	assets := make([]Asset, 0, len(records))
	for _, rec := range records {
		cat, err := ParseCategory(rec.Category)
		if err != nil {
			return nil, fmt.Errorf("row for %s: %w", rec.Ticker, err)
		}
		assets = append(assets, Asset{
			Ticker:                rec.Ticker,
			Name:                  rec.Name,
			Category:              cat,
			RiskLevel:             rec.RiskLevel,
			DividendYield:         rec.DividendYield,
			ExpectedDividendYield: rec.ExpectedDividendYield,
			CAGR1Y:                rec.CAGR1Y,
			CAGR3Y:                rec.CAGR3Y,
			CAGR5Y:                rec.CAGR5Y,
			Volatility:            rec.Volatility,
			Beta:                  rec.Beta,
			MaxDrawdown:           rec.MaxDrawdown,
			DividendQuality:       rec.DividendQuality,
			DividendGrowth:        rec.DividendGrowth,
			DividendConsistency:   rec.DividendConsistency,
		})
	}
	return assets, nil
}

// ExportCSV writes the asset universe to a CSV file in the same format
// ImportCSV reads.
func ExportCSV(path string, assets []Asset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog CSV: %w", err)
	}
	defer f.Close()

	records := make([]csvRecord, 0, len(assets))
	for _, a := range assets {
		records = append(records, csvRecord{
			Ticker:                a.Ticker,
			Name:                  a.Name,
			Category:              string(a.Category),
			RiskLevel:             a.RiskLevel,
			DividendYield:         a.DividendYield,
			ExpectedDividendYield: a.ExpectedDividendYield,
			CAGR1Y:                a.CAGR1Y,
			CAGR3Y:                a.CAGR3Y,
			CAGR5Y:                a.CAGR5Y,
			Volatility:            a.Volatility,
			Beta:                  a.Beta,
			MaxDrawdown:           a.MaxDrawdown,
			DividendQuality:       a.DividendQuality,
			DividendGrowth:        a.DividendGrowth,
			DividendConsistency:   a.DividendConsistency,
		})
	}

	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("failed to write catalog CSV: %w", err)
	}
	return nil
}
