package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/infra/bq"
)

type BigQuery struct {
	projectID types.GoogleProjectID
	datasetID types.BQDatasetID
	tableID   types.BQTableID
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID (optional, disables analytics export when empty)",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("DEVJOURNAL_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("DEVJOURNAL_BIGQUERY_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID for activity records",
			Category:    "BigQuery",
			Destination: (*string)(&x.tableID),
			Value:       "activities",
			Sources:     cli.EnvVars("DEVJOURNAL_BIGQUERY_TABLE_ID"),
		},
	}
}

// NewClient returns nil without error when the export is not configured.
func (x *BigQuery) NewClient(ctx context.Context) (*bq.Client, error) {
	if x.projectID == "" || x.datasetID == "" {
		return nil, nil
	}
	return bq.New(ctx, x.projectID, x.datasetID, x.tableID)
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("datasetID", x.datasetID),
		slog.Any("tableID", x.tableID),
	)
}
