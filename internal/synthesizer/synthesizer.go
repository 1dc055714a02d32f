// Package synthesizer pairs resolved alerts with matched resources and emits
// one template declaration per pair under a deterministic key.
package synthesizer

import (
	"strings"

	"github.com/pratik-mahalle/alertforge/internal/domain/alert"
	"github.com/pratik-mahalle/alertforge/internal/iac/cloudformation"
	"github.com/pratik-mahalle/alertforge/internal/matcher"
)

// whereField is the metric attribute a condition's where clause filters on,
// per category.
var whereField = map[alert.Category]string{
	alert.CategoryFunction:   "provider.functionName",
	alert.CategoryAPIGateway: "provider.apiName",
	alert.CategorySQS:        "provider.queueName",
	alert.CategoryDynamoDB:   "provider.tableName",
}

// Synthesizer builds declarations for one deployment. It is pure over its
// inputs; calling it twice with the same arguments yields identical output.
type Synthesizer struct {
	conditionServiceToken string
	policyKey             string
	ctx                   alert.ServiceContext
}

// New creates a synthesizer. policyKey is the logical ID of the policy
// declaration every condition references.
func New(conditionServiceToken, policyKey string, ctx alert.ServiceContext) *Synthesizer {
	return &Synthesizer{
		conditionServiceToken: conditionServiceToken,
		policyKey:             policyKey,
		ctx:                   ctx,
	}
}

// Resources synthesizes declarations for a template-discovered category
// (apiGateway, sqs, dynamoDb). Each alert is matched against the resource map
// scoped to its own filter; alerts with no matching resource emit nothing.
// Matched logical IDs are recorded on the alerts slice.
func (s *Synthesizer) Resources(category alert.Category, alerts []alert.Resolved, resources map[string]cloudformation.Resource) map[string]alert.Declaration {
	decls := make(map[string]alert.Declaration)
	resourceType, ok := matcher.ResourceTypeFor(category)
	if !ok {
		return decls
	}

	// Filters carried by sibling alerts mark DLQ companions; queue alerts
	// without a filter of their own match the complementary set.
	var exclude []string
	if category == alert.CategorySQS {
		for _, a := range alerts {
			if a.Filter != "" {
				exclude = append(exclude, a.Filter)
			}
		}
	}

	for i := range alerts {
		a := &alerts[i]
		opts := matcher.Options{Filter: a.Filter}
		if category == alert.CategorySQS && a.Filter == "" {
			opts.Exclude = exclude
		}

		for _, m := range matcher.Resources(resources, resourceType, opts) {
			a.Resources = append(a.Resources, m.LogicalID)
			key := alert.DeclarationKey(m.LogicalID, a.Type)
			decls[key] = alert.NewConditionDeclaration(alert.ConditionInput{
				ServiceToken: s.conditionServiceToken,
				PolicyKey:    s.policyKey,
				Alert:        *a,
				EntityName:   m.Name,
				WhereField:   whereField[category],
			})
		}
	}

	return decls
}

// Functions synthesizes function-category declarations for the given alerts
// against the given functions. The caller decides which functions see which
// alert list (a function with local alerts is excluded from the global
// cross-product entirely); this method only applies alert filters against the
// function names and shapes the declarations.
func (s *Synthesizer) Functions(alerts []alert.Resolved, functions []alert.FunctionInfo) map[string]alert.Declaration {
	decls := make(map[string]alert.Declaration)

	for i := range alerts {
		a := &alerts[i]
		for _, fn := range functions {
			if a.Filter != "" && !functionMatches(fn, a.Filter) {
				continue
			}
			a.Resources = append(a.Resources, fn.LogicalName)
			key := alert.DeclarationKey(fn.LogicalName, a.Type)
			decls[key] = alert.NewConditionDeclaration(alert.ConditionInput{
				ServiceToken: s.conditionServiceToken,
				PolicyKey:    s.policyKey,
				Alert:        *a,
				EntityName:   s.ctx.FunctionEntityName(fn.DisplayName),
				WhereField:   whereField[alert.CategoryFunction],
			})
		}
	}

	return decls
}

func functionMatches(fn alert.FunctionInfo, filter string) bool {
	return strings.Contains(fn.LogicalName, filter) || strings.Contains(fn.DisplayName, filter)
}
