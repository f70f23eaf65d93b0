package bq_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/devjournal/pkg/domain/model"
	"github.com/m-mizutani/devjournal/pkg/domain/types"
	"github.com/m-mizutani/devjournal/pkg/infra/bq"
	"github.com/m-mizutani/devjournal/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestClient(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

	ctx := context.Background()

	tblName := types.BQTableID(time.Now().Format("insert_test_20060102_150405"))
	client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)
	gt.NoError(t, err)

	record := model.ActivityRawRecord{
		Activity: model.Activity{
			ID:         types.NewActivityID(),
			UserID:     "42",
			Kind:       types.ActivityCommit,
			Repository: "m-mizutani/devjournal",
			Title:      "Pushed 1 commits",
			URL:        "https://github.com/m-mizutani/devjournal/commit/deadbeef",
			CreatedAt:  time.Now().UTC(),
		},
	}
	record.Timestamp = record.CreatedAt.UnixMicro()

	schema := gt.R1(bqs.Infer(record)).NoError(t)

	t.Run("create table and insert a record", func(t *testing.T) {
		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
			Name:   tblName.String(),
			Schema: schema,
		}))

		md := gt.R1(client.GetMetadata(ctx)).NoError(t)
		gt.True(t, bqs.Equal(md.Schema, schema))

		gt.NoError(t, client.Insert(ctx, schema, record))
	})

	t.Run("metadata of missing table is nil", func(t *testing.T) {
		missing, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), "no_such_table_999999")
		gt.NoError(t, err)

		md, err := missing.GetMetadata(ctx)
		gt.NoError(t, err)
		gt.V(t, md).Equal(nil)
	})
}
