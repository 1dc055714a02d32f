// Package matcher selects the template resources an alert applies to. Type
// matching is exact; name filters are plain substring checks over the logical
// ID and the resource's designated name property, which is also how dead
// letter queue companions are told apart from their primary queues.
package matcher

import (
	"sort"
	"strings"

	"github.com/pratik-mahalle/alertforge/internal/domain/alert"
	"github.com/pratik-mahalle/alertforge/internal/iac/cloudformation"
)

// CloudFormation resource type strings per category.
const (
	TypeLambdaFunction = "AWS::Lambda::Function"
	TypeRestAPI        = "AWS::ApiGateway::RestApi"
	TypeSQSQueue       = "AWS::SQS::Queue"
	TypeDynamoDBTable  = "AWS::DynamoDB::Table"
)

var resourceTypeByCategory = map[alert.Category]string{
	alert.CategoryFunction:   TypeLambdaFunction,
	alert.CategoryAPIGateway: TypeRestAPI,
	alert.CategorySQS:        TypeSQSQueue,
	alert.CategoryDynamoDB:   TypeDynamoDBTable,
}

// nameProperty is the Properties field carrying the deployed name, per
// resource type.
var nameProperty = map[string]string{
	TypeLambdaFunction: "FunctionName",
	TypeRestAPI:        "Name",
	TypeSQSQueue:       "QueueName",
	TypeDynamoDBTable:  "TableName",
}

// ResourceTypeFor returns the provider type string matched for a category.
func ResourceTypeFor(category alert.Category) (string, bool) {
	t, ok := resourceTypeByCategory[category]
	return t, ok
}

// Match is one resource an alert applies to. Name is the deployed name when
// declared as a plain string property, otherwise the logical ID.
type Match struct {
	LogicalID string
	Name      string
	Resource  cloudformation.Resource
}

// Options narrows a match beyond the type check. Filter keeps resources whose
// logical ID or name contains the substring. Exclude drops resources matching
// any of its substrings; the synthesizer uses it to keep DLQ companions out
// of non-DLQ queue alerts.
type Options struct {
	Filter  string
	Exclude []string
}

// Resources returns the resources of the given type that pass the options,
// sorted by logical ID. An empty result is a normal outcome.
func Resources(resources map[string]cloudformation.Resource, resourceType string, opts Options) []Match {
	matches := make([]Match, 0)
	for id, res := range resources {
		if res.Type != resourceType {
			continue
		}
		name := res.StringProperty(nameProperty[resourceType])
		if name == "" {
			name = id
		}
		if opts.Filter != "" && !contains(id, name, opts.Filter) {
			continue
		}
		if excluded(id, name, opts.Exclude) {
			continue
		}
		matches = append(matches, Match{LogicalID: id, Name: name, Resource: res})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].LogicalID < matches[j].LogicalID })
	return matches
}

func contains(id, name, substr string) bool {
	return strings.Contains(id, substr) || strings.Contains(name, substr)
}

func excluded(id, name string, exclude []string) bool {
	for _, e := range exclude {
		if e != "" && contains(id, name, e) {
			return true
		}
	}
	return false
}
