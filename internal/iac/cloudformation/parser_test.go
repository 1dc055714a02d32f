package cloudformation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pratik-mahalle/alertforge/internal/domain/alert"
)

const jsonTemplate = `{
  "AWSTemplateFormatVersion": "2010-09-09",
  "Resources": {
    "SimpleQueue": {
      "Type": "AWS::SQS::Queue",
      "Properties": {"QueueName": "simple-queue"}
    },
    "OrdersTable": {
      "Type": "AWS::DynamoDB::Table",
      "Properties": {"TableName": "orders"}
    }
  }
}`

const yamlTemplate = `
AWSTemplateFormatVersion: "2010-09-09"
Resources:
  SimpleQueue:
    Type: AWS::SQS::Queue
    Properties:
      QueueName: simple-queue
`

func TestParseJSON(t *testing.T) {
	tpl, err := ParseJSON([]byte(jsonTemplate))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if len(tpl.Resources) != 2 {
		t.Fatalf("parsed %d resources, want 2", len(tpl.Resources))
	}
	q := tpl.Resources["SimpleQueue"]
	if q.Type != "AWS::SQS::Queue" {
		t.Errorf("Type = %s", q.Type)
	}
	if q.StringProperty("QueueName") != "simple-queue" {
		t.Errorf("QueueName = %s", q.StringProperty("QueueName"))
	}

	if _, err := ParseJSON([]byte("{not json")); err == nil {
		t.Error("ParseJSON() error = nil for malformed input")
	}
}

func TestParseYAML(t *testing.T) {
	tpl, err := ParseYAML([]byte(yamlTemplate))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if tpl.Resources["SimpleQueue"].StringProperty("QueueName") != "simple-queue" {
		t.Errorf("resources = %+v", tpl.Resources)
	}
}

func TestParseFile_FormatByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "template.json")
	if err := os.WriteFile(jsonPath, []byte(jsonTemplate), 0644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "template.yml")
	if err := os.WriteFile(yamlPath, []byte(yamlTemplate), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsonPath, yamlPath} {
		tpl, err := ParseFile(path)
		if err != nil {
			t.Fatalf("ParseFile(%s) error = %v", path, err)
		}
		if _, ok := tpl.Resources["SimpleQueue"]; !ok {
			t.Errorf("ParseFile(%s): SimpleQueue missing", path)
		}
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("ParseFile() error = nil for missing file")
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	tpl, err := ParseJSON([]byte(jsonTemplate))
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteFile(path, tpl); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	back, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() after write error = %v", err)
	}
	if len(back.Resources) != len(tpl.Resources) {
		t.Errorf("round trip lost resources: %d vs %d", len(back.Resources), len(tpl.Resources))
	}
}

func TestMergeDeclarations(t *testing.T) {
	tpl, err := ParseJSON([]byte(jsonTemplate))
	if err != nil {
		t.Fatal(err)
	}

	decls := map[string]alert.Declaration{
		"SimpleQueueQueueVisibleMessagesAlert": {
			Type:       alert.ConditionResourceType,
			Properties: map[string]interface{}{"name": "Queue visible messages - simple-queue"},
		},
		"MyPolicyAlertPolicy": {
			Type:       alert.PolicyResourceType,
			Properties: map[string]interface{}{"policy_name": "my-policy"},
		},
	}

	MergeDeclarations(tpl, decls)

	if len(tpl.Resources) != 4 {
		t.Fatalf("merged template has %d resources, want 4", len(tpl.Resources))
	}
	merged := tpl.Resources["SimpleQueueQueueVisibleMessagesAlert"]
	if merged.Type != alert.ConditionResourceType {
		t.Errorf("merged Type = %s", merged.Type)
	}
	// pre-existing resources untouched
	if tpl.Resources["SimpleQueue"].StringProperty("QueueName") != "simple-queue" {
		t.Error("existing resource modified by merge")
	}
}

func TestMergeDeclarations_NilResources(t *testing.T) {
	tpl := &Template{}
	MergeDeclarations(tpl, map[string]alert.Declaration{
		"Key": {Type: alert.ConditionResourceType, Properties: map[string]interface{}{}},
	})
	if len(tpl.Resources) != 1 {
		t.Errorf("resources = %+v", tpl.Resources)
	}
}

func TestResourcesByType(t *testing.T) {
	tpl, err := ParseJSON([]byte(jsonTemplate))
	if err != nil {
		t.Fatal(err)
	}
	if ids := ResourcesByType(tpl, "AWS::SQS::Queue"); len(ids) != 1 || ids[0] != "SimpleQueue" {
		t.Errorf("ResourcesByType() = %v", ids)
	}
	if ids := ResourcesByType(tpl, "AWS::Lambda::Function"); len(ids) != 0 {
		t.Errorf("ResourcesByType() = %v, want empty", ids)
	}
}
