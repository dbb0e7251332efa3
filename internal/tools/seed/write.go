package seed

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mazona200/mobileApp/internal/docstore"
	apperrors "github.com/mazona200/mobileApp/internal/platform/errors"
	"github.com/mazona200/mobileApp/internal/platform/otel"
)

const tracerName = "github.com/mazona200/mobileApp/internal/tools/seed"

func tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// writer adds documents one at a time and reports each generated id.
type writer struct {
	logf func(format string, args ...any)
}

func (w writer) add(ctx context.Context, coll docstore.Collection, fields map[string]any) (docstore.Document, error) {
	ctx, span := tracer().Start(ctx, "docstore.add",
		trace.WithAttributes(attribute.String("docstore.collection", coll.Path())))
	defer span.End()

	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, apperrors.FromStore("add document", err)
	}
	doc, err := coll.Add(ctx, fields)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, apperrors.FromStore("add document to "+coll.Path(), err)
	}
	span.SetAttributes(attribute.String("docstore.document", doc.Path()))
	if w.logf != nil {
		w.logf("  wrote %s", doc.Path())
	}
	return doc, nil
}
