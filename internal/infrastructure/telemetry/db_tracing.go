package telemetry

import (
	"errors"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterDBTracing installs otelgorm on db so every query becomes a child
// span of the request span. Query variables are never recorded.
func RegisterDBTracing(db *gorm.DB, dbSystem string, logger *zap.Logger) error {
	if err := db.Use(otelgorm.NewPlugin(
		otelgorm.WithDBName(dbSystem),
		otelgorm.WithoutQueryVariables(),
	)); err != nil {
		return err
	}

	annotate := func(tx *gorm.DB) { annotateSpan(tx) }
	cb := db.Callback()
	for _, err := range []error{
		cb.Create().After("gorm:create").Register("bizdash:span_create", annotate),
		cb.Query().After("gorm:query").Register("bizdash:span_query", annotate),
		cb.Update().After("gorm:update").Register("bizdash:span_update", annotate),
		cb.Delete().After("gorm:delete").Register("bizdash:span_delete", annotate),
		cb.Row().After("gorm:row").Register("bizdash:span_row", annotate),
		cb.Raw().After("gorm:raw").Register("bizdash:span_raw", annotate),
	} {
		if err != nil {
			return err
		}
	}

	logger.Info("Database tracing enabled", zap.String("db_system", dbSystem))
	return nil
}

// annotateSpan adds table and row count and marks real failures. A missing
// record is a normal NOT_FOUND outcome, not a span error.
func annotateSpan(tx *gorm.DB) {
	ctx := tx.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	if tx.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", tx.Statement.Table))
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", tx.Statement.RowsAffected))

	if tx.Error != nil && !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, tx.Error.Error())
		span.RecordError(tx.Error)
	}
}
