package metrics

import (
	"context"

	"go.mongodb.org/mongo-driver/event"
)

// MongoMonitor возвращает монитор команд драйвера MongoDB, пишущий длительность команд
func (m *Metrics) MongoMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			m.MongoCommandDuration.
				WithLabelValues(m.ServiceName, e.CommandName, "ok").
				Observe(e.Duration.Seconds())
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			m.MongoCommandDuration.
				WithLabelValues(m.ServiceName, e.CommandName, "error").
				Observe(e.Duration.Seconds())
		},
	}
}
