package pipeline

import (
	"fundrank/internal"
	"fundrank/internal/config"
	"fundrank/internal/dataset"
	"fundrank/internal/util"
)

// BuildReport renders ranked aggregates as an output dataset. The
// marketplace column is only emitted when the input carried one.
func BuildReport(aggs []internal.CompanyAggregate, includeMarketplace bool, cfg config.Config) *dataset.Dataset {
	headers := []string{cfg.CompanyColumn, cfg.OutputFundingHeader}
	if includeMarketplace {
		headers = append(headers, cfg.OutputMarketplaceHeader)
	}

	ds := &dataset.Dataset{Headers: headers, Rows: make([]dataset.Row, 0, len(aggs))}
	for _, agg := range aggs {
		row := dataset.Row{
			cfg.CompanyColumn:       agg.Company,
			cfg.OutputFundingHeader: util.FormatFunding(util.FloatPtr(agg.FundingUSD)),
		}
		if includeMarketplace {
			row[cfg.OutputMarketplaceHeader] = agg.Marketplace
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds
}
