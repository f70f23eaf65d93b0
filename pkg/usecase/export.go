package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/devjournal/pkg/domain/interfaces"
	"github.com/m-mizutani/devjournal/pkg/domain/model"
)

// exportActivities appends newly persisted records to the BigQuery activity
// table. The table schema is inferred from the record shape and created or
// merged on demand. A nil sink disables the export.
func (x *UseCase) exportActivities(ctx context.Context, activities []*model.Activity) error {
	sink := x.clients.BigQuery()
	if sink == nil {
		return nil
	}

	for _, activity := range activities {
		record := &model.ActivityRawRecord{
			Activity:  *activity,
			Timestamp: activity.CreatedAt.UnixMicro(),
		}

		schema, err := createOrUpdateActivityTable(ctx, sink, record)
		if err != nil {
			return err
		}

		if err := sink.Insert(ctx, schema, record); err != nil {
			return goerr.Wrap(err, "failed to insert activity record")
		}
	}

	return nil
}

func createOrUpdateActivityTable(ctx context.Context, sink interfaces.BigQuery, record *model.ActivityRawRecord) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer activity schema")
	}

	metaData, err := sink.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get table metadata")
	}
	if metaData == nil {
		if err := sink.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create activity table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge activity schema")
	}
	if err := sink.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update activity table")
	}

	return mergedSchema, nil
}
