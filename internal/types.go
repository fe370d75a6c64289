package internal

// Record is one input row after normalization: the company name is
// canonicalized, the funding cell is parsed into USD. A nil FundingUSD
// marks an amount that could not be parsed.
type Record struct {
	Company     string
	FundingUSD  *float64
	Marketplace string
}

// CompanyAggregate is the collapsed view of every row sharing one
// canonical company name. FundingUSD is the maximum seen across rows;
// Marketplace is "Yes" when any contributing row said yes.
type CompanyAggregate struct {
	Company     string
	FundingUSD  float64
	Marketplace string
}

type RunRow struct {
	ID          int
	TraceID     string
	InputPath   string
	OutputPath  string
	TimingsJSON string
	CountsJSON  string
	CreatedAt   string
}
