package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"fundrank/internal"
	"fundrank/internal/config"
	"fundrank/internal/dataset"
	"fundrank/internal/util"
)

// NormalizeRows turns raw dataset rows into records ready for ranking.
// Rows with an empty company or an unparseable funding value are dropped
// and counted; in strict mode the first such row fails the whole run.
func NormalizeRows(ds *dataset.Dataset, cfg config.Config) ([]internal.Record, int, error) {
	hasMarketplace := ds.HasColumn(cfg.MarketplaceColumn)

	out := make([]internal.Record, 0, len(ds.Rows))
	skipped := 0
	for i, row := range ds.Rows {
		company := util.NormalizeCompany(row[cfg.CompanyColumn])
		funding := parseFundingCell(row[cfg.FundingColumn], cfg.FundingNumeric)
		if company == "" || funding == nil {
			if cfg.StrictRows {
				return nil, 0, fmt.Errorf("row %d: unusable company %q or funding %q",
					i+1, row[cfg.CompanyColumn], row[cfg.FundingColumn])
			}
			skipped++
			continue
		}
		rec := internal.Record{Company: company, FundingUSD: funding}
		if hasMarketplace {
			rec.Marketplace = row[cfg.MarketplaceColumn]
		}
		out = append(out, rec)
	}
	return out, skipped, nil
}

// parseFundingCell applies the funding normalizer, or plain float
// parsing when the column is declared numeric (the pre-parsed "Capital"
// style of input).
func parseFundingCell(raw string, numeric bool) *float64 {
	if numeric {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil
		}
		return util.FloatPtr(v)
	}
	return util.ParseFunding(raw)
}
