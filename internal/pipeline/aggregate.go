package pipeline

import (
	"sort"
	"strings"

	"fundrank/internal"
)

// Aggregate collapses records into one aggregate per company: funding is
// the maximum seen across rows, marketplace is "Yes" as soon as any
// contributing row says yes. Output order follows first appearance,
// which also fixes the order of equal-funding ties in TopN.
func Aggregate(records []internal.Record) []internal.CompanyAggregate {
	index := map[string]int{}
	out := []internal.CompanyAggregate{}
	for _, rec := range records {
		if rec.Company == "" || rec.FundingUSD == nil {
			continue
		}
		i, ok := index[rec.Company]
		if !ok {
			i = len(out)
			index[rec.Company] = i
			out = append(out, internal.CompanyAggregate{
				Company:     rec.Company,
				FundingUSD:  *rec.FundingUSD,
				Marketplace: "No",
			})
		}
		if *rec.FundingUSD > out[i].FundingUSD {
			out[i].FundingUSD = *rec.FundingUSD
		}
		if strings.EqualFold(strings.TrimSpace(rec.Marketplace), "yes") {
			out[i].Marketplace = "Yes"
		}
	}
	return out
}

// TopN sorts aggregates by funding descending (stable over the incoming
// order) and keeps the first topN. A topN beyond the number of
// aggregates returns everything.
func TopN(aggs []internal.CompanyAggregate, topN int) []internal.CompanyAggregate {
	sorted := make([]internal.CompanyAggregate, len(aggs))
	copy(sorted, aggs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FundingUSD > sorted[j].FundingUSD
	})
	if topN >= 0 && len(sorted) > topN {
		sorted = sorted[:topN]
	}
	return sorted
}

// Rank is the one-call surface: group, reduce, sort, truncate. An empty
// input yields an empty result, never an error.
func Rank(records []internal.Record, topN int) []internal.CompanyAggregate {
	return TopN(Aggregate(records), topN)
}
