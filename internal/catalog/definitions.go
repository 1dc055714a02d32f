package catalog

import "github.com/pratik-mahalle/alertforge/internal/domain/alert"

// Default thresholds picked to page on sustained problems rather than single
// blips; callers tune them per selector.
const defaultCloseTimerHours = 24

// Default returns the built-in catalog. The returned catalog always passes
// Validate; a test covers that.
func Default() *Catalog {
	return New(defaultDefinitions(), defaultSets())
}

func defaultDefinitions() map[alert.Category][]alert.Definition {
	return map[alert.Category][]alert.Definition{
		alert.CategoryFunction: {
			{
				Type:                alert.FunctionErrors,
				Title:               "Function errors",
				Enabled:             true,
				ViolationCloseTimer: defaultCloseTimerHours,
				EventType:           "ServerlessSample",
				SelectValue:         "provider.errors.Sum",
				Comparison:          "above",
				CriticalThreshold:   1,
				DurationMinutes:     5,
			},
			{
				Type:                alert.FunctionThrottles,
				Title:               "Function throttles",
				Enabled:             true,
				ViolationCloseTimer: defaultCloseTimerHours,
				EventType:           "ServerlessSample",
				SelectValue:         "provider.throttles.Sum",
				Comparison:          "above",
				CriticalThreshold:   1,
				DurationMinutes:     5,
			},
			{
				Type:                alert.FunctionDuration1s,
				Title:               "Function duration over 1s",
				Enabled:             true,
				ViolationCloseTimer: defaultCloseTimerHours,
				EventType:           "ServerlessSample",
				SelectValue:         "provider.duration.Average",
				Comparison:          "above",
				CriticalThreshold:   1000,
				DurationMinutes:     5,
			},
			{
				Type:                alert.FunctionDuration5s,
				Title:               "Function duration over 5s",
				Enabled:             true,
				ViolationCloseTimer: defaultCloseTimerHours,
				EventType:           "ServerlessSample",
				SelectValue:         "provider.duration.Average",
				Comparison:          "above",
				CriticalThreshold:   5000,
				DurationMinutes:     5,
			},
			{
				Type:                alert.FunctionConcurrency,
				Title:               "Function concurrent executions",
				Enabled:             false,
				ViolationCloseTimer: defaultCloseTimerHours,
				EventType:           "ServerlessSample",
				SelectValue:         "provider.concurrentExecutions.Max",
				Comparison:          "above",
				CriticalThreshold:   80,
				DurationMinutes:     10,
			},
		},
		alert.CategoryAPIGateway: {
			{
				Type:                alert.API4xxErrors,
				Title:               "API gateway 4xx errors",
				Enabled:             true,
				ViolationCloseTimer: defaultCloseTimerHours,
				EventType:           "ApiGatewaySample",
				SelectValue:         "provider.4xxError.Sum",
				Comparison:          "above",
				CriticalThreshold:   10,
				DurationMinutes:     5,
			},
			{
				Type:                alert.API5xxErrors,
				Title:               "API gateway 5xx errors",
				Enabled:             true,
				ViolationCloseTimer: defaultCloseTimerHours,
				EventType:           "ApiGatewaySample",
				SelectValue:         "provider.5xxError.Sum",
				Comparison:          "above",
				CriticalThreshold:   1,
				DurationMinutes:     5,
			},
			{
				Type:                alert.APILatency1s,
				Title:               "API gateway latency over 1s",
				Enabled:             true,
				ViolationCloseTimer: defaultCloseTimerHours,
				EventType:           "ApiGatewaySample",
				SelectValue:         "provider.latency.Average",
				Comparison:          "above",
				CriticalThreshold:   1000,
				DurationMinutes:     5,
			},
		},
		alert.CategorySQS: {
			{
				Type:                alert.QueueVisibleMessages,
				Title:               "Queue visible messages",
				Enabled:             true,
				ViolationCloseTimer: defaultCloseTimerHours,
				EventType:           "QueueSample",
				SelectValue:         "provider.approximateNumberOfMessagesVisible.Max",
				Comparison:          "above",
				CriticalThreshold:   1000,
				DurationMinutes:     10,
			},
			{
				Type:                alert.QueueOldestMessageAge,
				Title:               "Queue oldest message age",
				Enabled:             true,
				ViolationCloseTimer: defaultCloseTimerHours,
				EventType:           "QueueSample",
				SelectValue:         "provider.approximateAgeOfOldestMessage.Max",
				Comparison:          "above",
				CriticalThreshold:   600,
				DurationMinutes:     10,
			},
			{
				// DLQ companions are recognised by naming convention only;
				// the default filter encodes that convention and can be
				// overridden per selector.
				Type:                alert.DLQVisibleMessages,
				Title:               "Dead letter queue visible messages",
				Enabled:             true,
				ViolationCloseTimer: defaultCloseTimerHours,
				Filter:              "-dlq",
				EventType:           "QueueSample",
				SelectValue:         "provider.approximateNumberOfMessagesVisible.Max",
				Comparison:          "above",
				CriticalThreshold:   0,
				DurationMinutes:     5,
			},
		},
		alert.CategoryDynamoDB: {
			{
				Type:                alert.TableReadThrottles,
				Title:               "Table read throttles",
				Enabled:             true,
				ViolationCloseTimer: defaultCloseTimerHours,
				EventType:           "DatastoreSample",
				SelectValue:         "provider.readThrottleEvents.Sum",
				Comparison:          "above",
				CriticalThreshold:   1,
				DurationMinutes:     5,
			},
			{
				Type:                alert.TableWriteThrottles,
				Title:               "Table write throttles",
				Enabled:             true,
				ViolationCloseTimer: defaultCloseTimerHours,
				EventType:           "DatastoreSample",
				SelectValue:         "provider.writeThrottleEvents.Sum",
				Comparison:          "above",
				CriticalThreshold:   1,
				DurationMinutes:     5,
			},
			{
				Type:                alert.TableSystemErrors,
				Title:               "Table system errors",
				Enabled:             true,
				ViolationCloseTimer: defaultCloseTimerHours,
				EventType:           "DatastoreSample",
				SelectValue:         "provider.systemErrors.Sum",
				Comparison:          "above",
				CriticalThreshold:   1,
				DurationMinutes:     5,
			},
		},
	}
}

func defaultSets() map[alert.Category]map[string][]alert.Type {
	return map[alert.Category]map[string][]alert.Type{
		alert.CategoryFunction: {
			"FUNCTION_HEALTH": {alert.FunctionErrors, alert.FunctionThrottles},
			"FUNCTION_PERFORMANCE": {
				alert.FunctionDuration1s,
				alert.FunctionDuration5s,
			},
		},
		alert.CategoryAPIGateway: {
			"API_ERRORS": {alert.API4xxErrors, alert.API5xxErrors},
		},
		alert.CategorySQS: {
			"QUEUE_HEALTH": {
				alert.QueueVisibleMessages,
				alert.QueueOldestMessageAge,
				alert.DLQVisibleMessages,
			},
		},
		alert.CategoryDynamoDB: {
			"TABLE_THROTTLES": {alert.TableReadThrottles, alert.TableWriteThrottles},
		},
	}
}
