// Package testutil provides fixtures shared by unit tests: a substitute
// catalog, template resource builders and a warning recorder.
package testutil

import (
	"github.com/pratik-mahalle/alertforge/internal/catalog"
	"github.com/pratik-mahalle/alertforge/internal/domain/alert"
	"github.com/pratik-mahalle/alertforge/internal/iac/cloudformation"
	"github.com/pratik-mahalle/alertforge/internal/matcher"
)

// Recorder collects warning messages in order of arrival.
type Recorder struct {
	Messages []string
}

// Report appends one message; pass it as the resolver's report func.
func (r *Recorder) Report(msg string) {
	r.Messages = append(r.Messages, msg)
}

// NewTestCatalog builds a small catalog independent of the built-in one, so
// resolver tests do not couple to production definitions.
func NewTestCatalog() *catalog.Catalog {
	defs := map[alert.Category][]alert.Definition{
		alert.CategoryFunction: {
			{Type: "FN_ERRORS", Title: "Errors", Enabled: true, ViolationCloseTimer: 24, EventType: "ServerlessSample", SelectValue: "provider.errors.Sum", Comparison: "above", CriticalThreshold: 1, DurationMinutes: 5},
			{Type: "FN_THROTTLES", Title: "Throttles", Enabled: true, ViolationCloseTimer: 24, EventType: "ServerlessSample", SelectValue: "provider.throttles.Sum", Comparison: "above", CriticalThreshold: 1, DurationMinutes: 5},
			{Type: "FN_DURATION", Title: "Duration", Enabled: true, ViolationCloseTimer: 24, EventType: "ServerlessSample", SelectValue: "provider.duration.Average", Comparison: "above", CriticalThreshold: 1000, DurationMinutes: 5},
		},
		alert.CategorySQS: {
			{Type: "Q_VISIBLE", Title: "Visible messages", Enabled: true, ViolationCloseTimer: 24, EventType: "QueueSample", SelectValue: "provider.approximateNumberOfMessagesVisible.Max", Comparison: "above", CriticalThreshold: 100, DurationMinutes: 5},
			{Type: "Q_DLQ", Title: "DLQ messages", Enabled: true, ViolationCloseTimer: 24, Filter: "-dlq", EventType: "QueueSample", SelectValue: "provider.approximateNumberOfMessagesVisible.Max", Comparison: "above", CriticalThreshold: 0, DurationMinutes: 5},
		},
	}
	sets := map[alert.Category]map[string][]alert.Type{
		alert.CategoryFunction: {
			"FN_HEALTH": {"FN_ERRORS", "FN_THROTTLES"},
		},
	}
	return catalog.New(defs, sets)
}

// FunctionResource builds a lambda function template resource.
func FunctionResource(name string) cloudformation.Resource {
	return cloudformation.Resource{
		Type:       matcher.TypeLambdaFunction,
		Properties: map[string]interface{}{"FunctionName": name},
	}
}

// QueueResource builds an SQS queue template resource.
func QueueResource(name string) cloudformation.Resource {
	return cloudformation.Resource{
		Type:       matcher.TypeSQSQueue,
		Properties: map[string]interface{}{"QueueName": name},
	}
}

// TableResource builds a DynamoDB table template resource.
func TableResource(name string) cloudformation.Resource {
	return cloudformation.Resource{
		Type:       matcher.TypeDynamoDBTable,
		Properties: map[string]interface{}{"TableName": name},
	}
}

// APIResource builds an API gateway template resource.
func APIResource(name string) cloudformation.Resource {
	return cloudformation.Resource{
		Type:       matcher.TypeRestAPI,
		Properties: map[string]interface{}{"Name": name},
	}
}

// Template wraps resources into a template.
func Template(resources map[string]cloudformation.Resource) *cloudformation.Template {
	if resources == nil {
		resources = make(map[string]cloudformation.Resource)
	}
	return &cloudformation.Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Resources:                resources,
	}
}
