package matcher

import (
	"testing"

	"github.com/pratik-mahalle/alertforge/internal/iac/cloudformation"
)

func queue(name string) cloudformation.Resource {
	return cloudformation.Resource{
		Type:       TypeSQSQueue,
		Properties: map[string]interface{}{"QueueName": name},
	}
}

func table(name string) cloudformation.Resource {
	return cloudformation.Resource{
		Type:       TypeDynamoDBTable,
		Properties: map[string]interface{}{"TableName": name},
	}
}

func TestResources(t *testing.T) {
	resources := map[string]cloudformation.Resource{
		"SimpleQueue":    queue("simple-queue"),
		"SimpleQueueDlq": queue("simple-queue-dlq"),
		"OrdersTable":    table("orders"),
		"UsersTable":     table("users"),
	}

	tests := []struct {
		name         string
		resources    map[string]cloudformation.Resource
		resourceType string
		opts         Options
		wantIDs      []string
	}{
		{
			name:         "empty resource map",
			resources:    map[string]cloudformation.Resource{},
			resourceType: TypeSQSQueue,
			wantIDs:      []string{},
		},
		{
			name:         "type match is exact",
			resources:    resources,
			resourceType: TypeDynamoDBTable,
			wantIDs:      []string{"OrdersTable", "UsersTable"},
		},
		{
			name:         "no resources of type",
			resources:    resources,
			resourceType: TypeRestAPI,
			wantIDs:      []string{},
		},
		{
			name:         "filter restricts by name property",
			resources:    resources,
			resourceType: TypeSQSQueue,
			opts:         Options{Filter: "-dlq"},
			wantIDs:      []string{"SimpleQueueDlq"},
		},
		{
			name:         "filter matches logical id too",
			resources:    resources,
			resourceType: TypeDynamoDBTable,
			opts:         Options{Filter: "Orders"},
			wantIDs:      []string{"OrdersTable"},
		},
		{
			name:         "filter with no match",
			resources:    resources,
			resourceType: TypeSQSQueue,
			opts:         Options{Filter: "payments"},
			wantIDs:      []string{},
		},
		{
			name:         "exclude drops companions",
			resources:    resources,
			resourceType: TypeSQSQueue,
			opts:         Options{Exclude: []string{"-dlq"}},
			wantIDs:      []string{"SimpleQueue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resources(tt.resources, tt.resourceType, tt.opts)

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Resources() returned %d matches, want %d", len(got), len(tt.wantIDs))
			}
			for i, m := range got {
				if m.LogicalID != tt.wantIDs[i] {
					t.Errorf("Resources()[%d].LogicalID = %s, want %s", i, m.LogicalID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestResources_NameFallsBackToLogicalID(t *testing.T) {
	resources := map[string]cloudformation.Resource{
		"UnnamedQueue": {Type: TypeSQSQueue},
	}

	got := Resources(resources, TypeSQSQueue, Options{})
	if len(got) != 1 {
		t.Fatalf("Resources() returned %d matches, want 1", len(got))
	}
	if got[0].Name != "UnnamedQueue" {
		t.Errorf("Name = %q, want logical ID fallback %q", got[0].Name, "UnnamedQueue")
	}
}

func TestResourceTypeFor(t *testing.T) {
	if _, ok := ResourceTypeFor("notACategory"); ok {
		t.Error("ResourceTypeFor() ok = true for unknown category")
	}
	typ, ok := ResourceTypeFor("sqs")
	if !ok || typ != TypeSQSQueue {
		t.Errorf("ResourceTypeFor(sqs) = %q, %v", typ, ok)
	}
}
