package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pratik-mahalle/alertforge/internal/domain/alert"
	"github.com/pratik-mahalle/alertforge/internal/pkg/errors"
	"github.com/pratik-mahalle/alertforge/internal/pkg/validator"
)

// Config holds the full generator configuration
type Config struct {
	Service   string               `yaml:"service" json:"service"`
	Stage     string               `yaml:"stage" json:"stage"`
	Policy    PolicyConfig         `yaml:"policy" json:"policy"`
	Defaults  DefaultsConfig       `yaml:"defaults" json:"defaults"`
	Alerts    CategoryAlerts       `yaml:"alerts" json:"alerts"`
	Functions []alert.FunctionInfo `yaml:"functions" json:"functions"`
	Logging   LoggingConfig        `yaml:"logging" json:"logging"`
}

// PolicyConfig identifies the alert policy and the custom-resource service
// tokens backing policy and condition provisioning. The tokens and the policy
// name are required; their absence is a fatal configuration error.
type PolicyConfig struct {
	ServiceToken          string `yaml:"serviceToken" json:"service_token" validate:"required"`
	ConditionServiceToken string `yaml:"conditionServiceToken" json:"condition_service_token" validate:"required"`
	Name                  string `yaml:"name" json:"name" validate:"required"`
	IncidentPreference    string `yaml:"incidentPreference" json:"incident_preference" validate:"omitempty,oneof=PER_POLICY PER_CONDITION PER_CONDITION_AND_TARGET"`
}

// DefaultsConfig carries optional defaults applied before selector overrides.
type DefaultsConfig struct {
	ViolationCloseTimer int `yaml:"violationCloseTimer" json:"violation_close_timer" validate:"omitempty,gte=1,lte=72"`
}

// CategoryAlerts holds the global alert selector lists per category.
type CategoryAlerts struct {
	Function   []alert.Selector `yaml:"function" json:"function,omitempty"`
	APIGateway []alert.Selector `yaml:"apiGateway" json:"api_gateway,omitempty"`
	SQS        []alert.Selector `yaml:"sqs" json:"sqs,omitempty"`
	DynamoDB   []alert.Selector `yaml:"dynamoDb" json:"dynamo_db,omitempty"`
}

// For returns the selector list for a category.
func (a CategoryAlerts) For(category alert.Category) []alert.Selector {
	switch category {
	case alert.CategoryFunction:
		return a.Function
	case alert.CategoryAPIGateway:
		return a.APIGateway
	case alert.CategorySQS:
		return a.SQS
	case alert.CategoryDynamoDB:
		return a.DynamoDB
	}
	return nil
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"` // json or console
}

// Load reads a YAML configuration file, applies environment overrides for the
// service tokens and validates the result.
func Load(path string) (*Config, error) {
	// Load .env if present; secrets usually arrive via environment.
	_ = godotenv.Load()

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read config file %s", path), err)
	}

	cfg, err := Parse(content)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes, defaults and validates raw YAML configuration.
func Parse(content []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, errors.ConfigError("failed to parse config", err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ALERTFORGE_POLICY_SERVICE_TOKEN"); v != "" {
		cfg.Policy.ServiceToken = v
	}
	if v := os.Getenv("ALERTFORGE_CONDITION_SERVICE_TOKEN"); v != "" {
		cfg.Policy.ConditionServiceToken = v
	}
	if v := os.Getenv("ALERTFORGE_POLICY_NAME"); v != "" {
		cfg.Policy.Name = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Policy.IncidentPreference == "" {
		cfg.Policy.IncidentPreference = "PER_POLICY"
	}
	if cfg.Stage == "" {
		cfg.Stage = "dev"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

// Validate checks required fields. Failures here abort the run before any
// resolution happens.
func (c *Config) Validate() error {
	if verrs := validator.Validate(c); len(verrs) > 0 {
		return errors.ValidationError("invalid configuration", verrs)
	}
	return nil
}

// ServiceContext returns the deployment identity used for function entity
// names.
func (c *Config) ServiceContext() alert.ServiceContext {
	return alert.ServiceContext{Service: c.Service, Stage: c.Stage}
}
