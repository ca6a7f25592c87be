// Package bigquery reads grouped costs from a Cloud Billing export table using
// the BigQuery REST API. It implements the domain.BillingSource interface and
// validates every returned row before it reaches the aggregator.
package bigquery

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	bq "google.golang.org/api/bigquery/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/davidbz/spendwatch/internal/domain"
	"github.com/davidbz/spendwatch/internal/observability"
)

const (
	rowColumns           = 3
	pollTimeoutMs  int64 = 10_000
	defaultTimeout       = 60 * time.Second
)

// costQuery groups billing-export rows by service and currency for a date range.
const costQuery = `
SELECT
  service.description AS service_name,
  SUM(cost) AS total_cost,
  currency
FROM
  ` + "`%s`" + `
WHERE
  usage_start_time >= TIMESTAMP(@start_date)
  AND usage_start_time < TIMESTAMP(@end_date)
  AND billing_account_id = @billing_account_id
  AND cost > 0
GROUP BY service_name, currency
ORDER BY total_cost DESC`

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_.:-]+$`)

// Ensure interface conformance.
var _ domain.BillingSource = (*Source)(nil)

// Source implements domain.BillingSource over BigQuery.
type Source struct {
	config Config
	opts   []option.ClientOption
}

// NewSource creates a BigQuery billing source. Extra client options are applied
// after the ones derived from config.
func NewSource(config Config, opts ...option.ClientOption) *Source {
	return &Source{
		config: config,
		opts:   opts,
	}
}

// Fetch runs the grouped cost query for dateRange and returns validated rows in
// the order BigQuery produced them (cost descending).
func (s *Source) Fetch(ctx context.Context, dateRange domain.DateRange) ([]domain.CostRow, error) {
	logger := observability.FromContext(ctx)

	table, err := s.tablePath()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	svc, err := s.newService(ctx)
	if err != nil {
		return nil, err
	}

	req := &bq.QueryRequest{
		Query:         fmt.Sprintf(costQuery, table),
		UseLegacySql:  googleapi.Bool(false),
		ParameterMode: "NAMED",
		QueryParameters: []*bq.QueryParameter{
			dateParameter("start_date", dateRange.StartString()),
			dateParameter("end_date", dateRange.EndString()),
			stringParameter("billing_account_id", s.config.BillingAccountID),
		},
		Location:  s.config.Location,
		TimeoutMs: pollTimeoutMs,
	}

	logger.Debug("running billing export query",
		observability.String("table", table),
		observability.String("start_date", dateRange.StartString()),
		observability.String("end_date", dateRange.EndString()),
	)

	resp, err := svc.Jobs.Query(s.config.ProjectID, req).Context(ctx).Do()
	if err != nil {
		logger.Error("error fetching billing data", observability.Error(err))
		return nil, fmt.Errorf("%w: query: %w", domain.ErrSourceFailure, err)
	}

	tableRows, err := s.collect(ctx, svc, resp)
	if err != nil {
		logger.Error("error fetching billing data", observability.Error(err))
		return nil, err
	}

	rows := make([]domain.CostRow, 0, len(tableRows))
	for i, tableRow := range tableRows {
		row, parseErr := parseRow(tableRow)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: row %d: %w", domain.ErrSourceFailure, i, parseErr)
		}
		rows = append(rows, row)
	}

	logger.Info("billing data fetched", observability.Int("rows", len(rows)))
	return rows, nil
}

// collect waits for the query job to finish and gathers every result page.
func (s *Source) collect(ctx context.Context, svc *bq.Service, first *bq.QueryResponse) ([]*bq.TableRow, error) {
	rows := first.Rows
	complete := first.JobComplete
	pageToken := first.PageToken
	jobRef := first.JobReference

	for !complete || pageToken != "" {
		if jobRef == nil || jobRef.JobId == "" {
			return nil, fmt.Errorf("%w: query returned no job reference", domain.ErrSourceFailure)
		}

		call := svc.Jobs.GetQueryResults(s.config.ProjectID, jobRef.JobId).
			TimeoutMs(pollTimeoutMs).
			Context(ctx)
		if jobRef.Location != "" {
			call = call.Location(jobRef.Location)
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("%w: get query results: %w", domain.ErrSourceFailure, err)
		}

		complete = page.JobComplete
		if !complete {
			continue
		}

		rows = append(rows, page.Rows...)
		pageToken = page.PageToken
	}

	return rows, nil
}

// newService builds a BigQuery client from inline credentials or ADC.
func (s *Source) newService(ctx context.Context) (*bq.Service, error) {
	opts := []option.ClientOption{
		option.WithScopes(bq.BigqueryScope),
	}

	if creds := strings.TrimSpace(s.config.CredentialsJSON); creds != "" {
		if !json.Valid([]byte(creds)) {
			return nil, fmt.Errorf("%w: invalid GCP_CREDENTIALS JSON", domain.ErrConfiguration)
		}
		opts = append(opts, option.WithCredentialsJSON([]byte(creds)))
	}

	if s.config.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(s.config.Endpoint))
	}

	opts = append(opts, s.opts...)

	svc, err := bq.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: create bigquery service: %w", domain.ErrConfiguration, err)
	}

	return svc, nil
}

// tablePath returns the fully qualified export table after checking each part.
func (s *Source) tablePath() (string, error) {
	parts := []string{s.config.ProjectID, s.config.DatasetID, s.config.TableID}
	for _, part := range parts {
		if !identifierPattern.MatchString(part) {
			return "", fmt.Errorf("%w: invalid BigQuery table identifier %q", domain.ErrConfiguration, part)
		}
	}
	return strings.Join(parts, "."), nil
}

func (s *Source) timeout() time.Duration {
	if s.config.Timeout <= 0 {
		return defaultTimeout
	}
	return time.Duration(s.config.Timeout) * time.Second
}

// parseRow converts a (service_name, total_cost, currency) row.
func parseRow(row *bq.TableRow) (domain.CostRow, error) {
	if row == nil || len(row.F) != rowColumns {
		return domain.CostRow{}, fmt.Errorf("%w: expected %d columns", domain.ErrMalformedRow, rowColumns)
	}

	name, _ := cellString(row.F[0])

	rawCost, ok := cellString(row.F[1])
	if !ok || rawCost == "" {
		return domain.CostRow{}, fmt.Errorf("%w: missing total_cost", domain.ErrMalformedRow)
	}
	cost, err := decimal.NewFromString(rawCost)
	if err != nil {
		return domain.CostRow{}, fmt.Errorf("%w: total_cost %q: %w", domain.ErrMalformedRow, rawCost, err)
	}

	currency, ok := cellString(row.F[2])
	if !ok || currency == "" {
		return domain.CostRow{}, fmt.Errorf("%w: missing currency", domain.ErrMalformedRow)
	}

	return domain.CostRow{
		ServiceName: name,
		Cost:        cost,
		Currency:    currency,
	}, nil
}

// cellString returns the cell value when it is a non-null string.
func cellString(cell *bq.TableCell) (string, bool) {
	if cell == nil || cell.V == nil {
		return "", false
	}
	value, ok := cell.V.(string)
	return value, ok
}

func dateParameter(name, value string) *bq.QueryParameter {
	return &bq.QueryParameter{
		Name:           name,
		ParameterType:  &bq.QueryParameterType{Type: "DATE"},
		ParameterValue: &bq.QueryParameterValue{Value: value},
	}
}

func stringParameter(name, value string) *bq.QueryParameter {
	return &bq.QueryParameter{
		Name:           name,
		ParameterType:  &bq.QueryParameterType{Type: "STRING"},
		ParameterValue: &bq.QueryParameterValue{Value: value},
	}
}

