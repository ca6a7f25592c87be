package bigquery

// Config contains BigQuery billing-export settings.
// All fields map to Google API client options or query inputs:
//   - CredentialsJSON: Maps to option.WithCredentialsJSON(); empty means ADC
//   - Endpoint: Maps to option.WithEndpoint()
//   - Timeout: Upper bound for one Fetch (in seconds)
type Config struct {
	BillingAccountID string `env:"GCP_BILLING_ACCOUNT_ID"`
	ProjectID        string `env:"BIGQUERY_PROJECT_ID"`
	DatasetID        string `env:"BIGQUERY_DATASET_ID" envDefault:"cost_exporter"`
	TableID          string `env:"BIGQUERY_TABLE_ID"`
	Location         string `env:"BIGQUERY_LOCATION"`
	CredentialsJSON  string `env:"GCP_CREDENTIALS"`
	Endpoint         string `env:"BIGQUERY_ENDPOINT"`
	Timeout          int    `env:"BIGQUERY_TIMEOUT"    envDefault:"60"`
}
