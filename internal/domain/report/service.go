package report

import "context"

type ReportService interface {
	GetSummary(ctx context.Context) (*SummaryResponse, error)
	GetRange(ctx context.Context, filter *RangeFilter) (*RangeResponse, error)
}
