package graphql

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var schemaSDL string

const maxQueryDepth = 12

// panicLogger пишет паники резолверов в лог сервиса
type panicLogger struct {
	logger Logger
}

func (l panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.logger.Error("graphql - panic while resolving: %v", value)
}

// NewSchema разбирает схему и связывает ее с резолвером
func NewSchema(resolver *Resolver, logger Logger) (*graphql.Schema, error) {
	schema, err := graphql.ParseSchema(schemaSDL, resolver,
		graphql.UseFieldResolvers(),
		graphql.MaxDepth(maxQueryDepth),
		graphql.Logger(panicLogger{logger: logger}),
	)
	if err != nil {
		return nil, fmt.Errorf("graphql: parse schema: %w", err)
	}
	return schema, nil
}
