package alert

// Category identifies the kind of infrastructure resource an alert targets.
type Category string

// Resource categories covered by the catalog
const (
	CategoryFunction   Category = "function"
	CategoryAPIGateway Category = "apiGateway"
	CategorySQS        Category = "sqs"
	CategoryDynamoDB   Category = "dynamoDb"
)

// Categories returns all known categories in a stable order.
func Categories() []Category {
	return []Category{CategoryFunction, CategoryAPIGateway, CategorySQS, CategoryDynamoDB}
}

// Valid reports whether the category is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFunction, CategoryAPIGateway, CategorySQS, CategoryDynamoDB:
		return true
	}
	return false
}

// Type is the identifier of an alert definition, unique within its category.
type Type string

// Function alert types
const (
	FunctionErrors      Type = "FUNCTION_ERRORS"
	FunctionThrottles   Type = "FUNCTION_THROTTLES"
	FunctionDuration1s  Type = "FUNCTION_DURATION_1_SEC"
	FunctionDuration5s  Type = "FUNCTION_DURATION_5_SEC"
	FunctionConcurrency Type = "FUNCTION_CONCURRENT_EXECUTIONS"
)

// API gateway alert types
const (
	API4xxErrors Type = "API_4XX_ERRORS"
	API5xxErrors Type = "API_5XX_ERRORS"
	APILatency1s Type = "API_LATENCY_1_SEC"
)

// Queue alert types
const (
	QueueVisibleMessages  Type = "QUEUE_VISIBLE_MESSAGES"
	QueueOldestMessageAge Type = "QUEUE_OLDEST_MESSAGE_AGE"
	DLQVisibleMessages    Type = "DLQ_VISIBLE_MESSAGES"
)

// Table alert types
const (
	TableReadThrottles  Type = "TABLE_READ_THROTTLES"
	TableWriteThrottles Type = "TABLE_WRITE_THROTTLES"
	TableSystemErrors   Type = "TABLE_SYSTEM_ERRORS"
)

// Definition is an immutable catalog entry describing one alert:
// its identity, default switches and the metric condition it evaluates.
type Definition struct {
	Type                Type    `json:"type" yaml:"type"`
	Title               string  `json:"title" yaml:"title"`
	Enabled             bool    `json:"enabled" yaml:"enabled"`
	ViolationCloseTimer int     `json:"violation_close_timer" yaml:"violationCloseTimer"` // hours
	Filter              string  `json:"filter,omitempty" yaml:"filter,omitempty"`
	EventType           string  `json:"event_type" yaml:"eventType"`
	SelectValue         string  `json:"select_value" yaml:"selectValue"`
	Comparison          string  `json:"comparison" yaml:"comparison"`
	CriticalThreshold   float64 `json:"critical_threshold" yaml:"criticalThreshold"`
	DurationMinutes     int     `json:"duration_minutes" yaml:"durationMinutes"`
}

// Resolved is a catalog definition with selector overrides applied and the
// resource identifiers it matched during synthesis.
type Resolved struct {
	Definition

	// Resources holds the logical IDs of the matched infrastructure
	// resources, filled in by the synthesizer.
	Resources []string `json:"resources,omitempty"`
}

// FunctionInfo describes one deployed function handed in by the caller.
// LogicalName is the template lookup key, DisplayName the deployed name used
// to build the monitored-entity reference. A non-empty Alerts list replaces
// the global function alert list for this function.
type FunctionInfo struct {
	LogicalName string     `json:"logical_name" yaml:"name"`
	DisplayName string     `json:"display_name" yaml:"displayName"`
	Alerts      []Selector `json:"alerts,omitempty" yaml:"alerts,omitempty"`
}

// ServiceContext carries the deployment identity needed to name function
// entities (service and stage prefix the deployed function name).
type ServiceContext struct {
	Service string `json:"service"`
	Stage   string `json:"stage"`
}

// FunctionEntityName returns the deployed name of a function in this context.
func (c ServiceContext) FunctionEntityName(displayName string) string {
	return c.Service + "-" + c.Stage + "-" + displayName
}
