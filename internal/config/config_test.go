package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/pratik-mahalle/alertforge/internal/pkg/errors"
)

const validConfig = `
service: my-service
stage: prod
policy:
  serviceToken: arn:aws:lambda:us-east-1:123456789012:function:policy-provider
  conditionServiceToken: arn:aws:lambda:us-east-1:123456789012:function:condition-provider
  name: my-service-alerts
alerts:
  function:
    - FUNCTION_HEALTH
  sqs:
    - type: DLQ_VISIBLE_MESSAGES
      filter: "-dlq"
functions:
  - name: HelloLambdaFunction
    displayName: hello
  - name: WorkerLambdaFunction
    displayName: worker
    alerts:
      - FUNCTION_DURATION_1_SEC
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(validConfig))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Service != "my-service" || cfg.Stage != "prod" {
		t.Errorf("service context = %s/%s", cfg.Service, cfg.Stage)
	}
	if cfg.Policy.IncidentPreference != "PER_POLICY" {
		t.Errorf("IncidentPreference = %s, want default PER_POLICY", cfg.Policy.IncidentPreference)
	}
	if len(cfg.Alerts.Function) != 1 || cfg.Alerts.Function[0].Tag != "FUNCTION_HEALTH" {
		t.Errorf("function alerts = %+v", cfg.Alerts.Function)
	}
	if len(cfg.Alerts.SQS) != 1 || cfg.Alerts.SQS[0].Overrides == nil {
		t.Errorf("sqs alerts = %+v", cfg.Alerts.SQS)
	}
	if len(cfg.Functions) != 2 {
		t.Fatalf("functions = %d, want 2", len(cfg.Functions))
	}
	if len(cfg.Functions[1].Alerts) != 1 {
		t.Errorf("worker local alerts = %+v", cfg.Functions[1].Alerts)
	}
}

func TestParse_MissingRequiredTokens(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no policy block",
			yaml: "service: my-service",
		},
		{
			name: "missing condition service token",
			yaml: `
service: my-service
policy:
  serviceToken: arn:token
  name: my-policy
`,
		},
		{
			name: "missing policy name",
			yaml: `
service: my-service
policy:
  serviceToken: arn:token
  conditionServiceToken: arn:token
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() error = nil, want validation error")
			}
			appErr, ok := err.(*apperrors.AppError)
			if !ok {
				t.Fatalf("Parse() error type = %T, want *AppError", err)
			}
			if appErr.Code != apperrors.ErrCodeValidation {
				t.Errorf("error code = %s, want %s", appErr.Code, apperrors.ErrCodeValidation)
			}
		})
	}
}

func TestParse_InvalidIncidentPreference(t *testing.T) {
	raw := `
policy:
  serviceToken: arn:token
  conditionServiceToken: arn:token
  name: my-policy
  incidentPreference: WHENEVER
`
	if _, err := Parse([]byte(raw)); err == nil {
		t.Fatal("Parse() error = nil, want oneof validation error")
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("ALERTFORGE_POLICY_SERVICE_TOKEN", "arn:env-policy")
	t.Setenv("ALERTFORGE_CONDITION_SERVICE_TOKEN", "arn:env-condition")
	t.Setenv("ALERTFORGE_POLICY_NAME", "env-policy-name")

	cfg, err := Parse([]byte("service: my-service"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Policy.ServiceToken != "arn:env-policy" {
		t.Errorf("ServiceToken = %s", cfg.Policy.ServiceToken)
	}
	if cfg.Policy.ConditionServiceToken != "arn:env-condition" {
		t.Errorf("ConditionServiceToken = %s", cfg.Policy.ConditionServiceToken)
	}
	if cfg.Policy.Name != "env-policy-name" {
		t.Errorf("Name = %s", cfg.Policy.Name)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alertforge.yml")
	if err := os.WriteFile(path, []byte(validConfig), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Policy.Name != "my-service-alerts" {
		t.Errorf("policy name = %s", cfg.Policy.Name)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("Load() error = nil for missing file")
	}
}

func TestCategoryAlerts_For(t *testing.T) {
	cfg, err := Parse([]byte(validConfig))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := cfg.Alerts.For("function"); len(got) != 1 {
		t.Errorf("For(function) = %+v", got)
	}
	if got := cfg.Alerts.For("apiGateway"); len(got) != 0 {
		t.Errorf("For(apiGateway) = %+v", got)
	}
	if got := cfg.Alerts.For("notACategory"); got != nil {
		t.Errorf("For(unknown) = %+v, want nil", got)
	}
}
