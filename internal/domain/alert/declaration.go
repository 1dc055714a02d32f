package alert

import (
	"strings"
	"unicode"
)

// CloudFormation resource types emitted into the compiled template. Both are
// custom resources backed by the provisioning lambda identified by the
// configured service tokens.
const (
	PolicyResourceType    = "Custom::AlertPolicy"
	ConditionResourceType = "Custom::InfrastructureCondition"
)

// Declaration is one synthesized template fragment, ready to be merged into
// the compiled CloudFormation template under its key.
type Declaration struct {
	Type       string                 `json:"Type" yaml:"Type"`
	Properties map[string]interface{} `json:"Properties" yaml:"Properties"`
}

// ConditionInput carries everything needed to shape one infrastructure
// condition declaration.
type ConditionInput struct {
	ServiceToken string
	PolicyKey    string // logical ID of the policy declaration, referenced via Ref
	Alert        Resolved
	EntityName   string // deployed name of the monitored resource
	WhereField   string // metric attribute the entity name is matched against
}

// NewConditionDeclaration builds the declaration for one (resource, alert)
// pair.
func NewConditionDeclaration(in ConditionInput) Declaration {
	props := map[string]interface{}{
		"ServiceToken":          in.ServiceToken,
		"policy_id":             map[string]interface{}{"Ref": in.PolicyKey},
		"name":                  in.Alert.Title + " - " + in.EntityName,
		"type":                  "infra_metric",
		"enabled":               in.Alert.Enabled,
		"violation_close_timer": in.Alert.ViolationCloseTimer,
		"comparison":            in.Alert.Comparison,
		"critical_threshold":    in.Alert.CriticalThreshold,
		"duration_minutes":      in.Alert.DurationMinutes,
		"event_type":            in.Alert.EventType,
		"select_value":          in.Alert.SelectValue,
		"integration_provider":  "aws",
	}
	if in.WhereField != "" && in.EntityName != "" {
		props["where_clause"] = "`" + in.WhereField + "` = '" + in.EntityName + "'"
	}
	return Declaration{Type: ConditionResourceType, Properties: props}
}

// NewPolicyDeclaration builds the single policy declaration all conditions of
// one run reference.
func NewPolicyDeclaration(serviceToken, name, incidentPreference string) Declaration {
	return Declaration{
		Type: PolicyResourceType,
		Properties: map[string]interface{}{
			"ServiceToken":        serviceToken,
			"policy_name":         name,
			"incident_preference": incidentPreference,
		},
	}
}

// PolicyKey derives the logical ID of the policy declaration from the
// configured policy name.
func PolicyKey(policyName string) string {
	return sanitizeID(policyName) + "AlertPolicy"
}

// DeclarationKey derives the logical ID for one (resource, alert) pair. Keys
// are stable across runs and unique per pair within one run: the sanitized
// resource identifier concatenated with the pascal-cased alert type.
func DeclarationKey(resourceID string, t Type) string {
	return sanitizeID(resourceID) + pascalCase(string(t)) + "Alert"
}

// sanitizeID strips everything CloudFormation rejects in a logical ID and
// capitalizes each resulting segment.
func sanitizeID(s string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// pascalCase converts a SCREAMING_SNAKE alert type to PascalCase.
func pascalCase(s string) string {
	parts := strings.Split(strings.ToLower(s), "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
