package ports

import "time"

//go:generate mockery --name MetricsProvider --dir . --output ../../../../mocks/metrics --outpkg mocks --filename MetricsProvider.go
type MetricsProvider interface {
	IncrementHTTPRequests(route, method, status string)
	RecordHTTPRequestDuration(route, method string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementCacheHits()
	IncrementCacheMisses()
	RecordCacheOperationDuration(operation string, duration time.Duration)

	IncrementPostOperations(operation string, success bool)
	IncrementCommentOperations(operation string, success bool)
	IncrementSearchQueries(backend string, success bool)
	IncrementMailsSent(success bool)

	SetServiceHealth(healthy bool)
}
