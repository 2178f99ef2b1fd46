// SPDX-License-Identifier: Apache-2.0
package config

import (
	"encoding/json"
	"strings"
	"testing"
)

// schemaProperties generates a schema and returns its decoded top-level properties
func schemaProperties(t *testing.T, scope *ConfigScope) (map[string]interface{}, map[string]interface{}) {
	t.Helper()

	schema, err := GenerateJSONSchemaForScope(scope)
	if err != nil {
		t.Fatalf("GenerateJSONSchemaForScope failed: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(schema, &result); err != nil {
		t.Fatalf("Schema is not valid JSON: %v", err)
	}

	properties, ok := result["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("properties field missing or not an object")
	}
	return result, properties
}

// apiProperties returns the nested properties of the "api" object
func apiProperties(t *testing.T, properties map[string]interface{}) map[string]interface{} {
	t.Helper()

	api, ok := properties["api"].(map[string]interface{})
	if !ok {
		t.Fatal("api should be an object")
	}
	apiProps, ok := api["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("api should have properties")
	}
	return apiProps
}

func TestGenerateJSONSchema(t *testing.T) {
	schema, err := GenerateJSONSchema()
	if err != nil {
		t.Fatalf("GenerateJSONSchema failed: %v", err)
	}
	if len(schema) == 0 {
		t.Error("GenerateJSONSchema returned empty schema")
	}

	result, properties := schemaProperties(t, nil)

	if result["$schema"] != "https://json-schema.org/draft/2020-12/schema" {
		t.Errorf("$schema = %v, want Draft 2020-12", result["$schema"])
	}
	if title, ok := result["title"].(string); !ok || title == "" {
		t.Error("title field missing or empty")
	}

	for _, key := range []string{"use-tui", "log-level", "api", "links"} {
		if _, exists := properties[key]; !exists {
			t.Errorf("Expected property '%s' not found in schema", key)
		}
	}
}

func TestGenerateJSONSchema_NestedProperties(t *testing.T) {
	_, properties := schemaProperties(t, nil)
	apiProps := apiProperties(t, properties)

	for _, key := range []string{"url", "id", "token", "timeout"} {
		if _, exists := apiProps[key]; !exists {
			t.Errorf("api.%s should exist", key)
		}
	}
}

func TestGenerateJSONSchema_BooleanType(t *testing.T) {
	_, properties := schemaProperties(t, nil)
	useTUI := properties["use-tui"].(map[string]interface{})

	if useTUI["type"] != "boolean" {
		t.Errorf("use-tui type = %v, want boolean", useTUI["type"])
	}
	if useTUI["default"] != true {
		t.Errorf("use-tui default = %v, want true", useTUI["default"])
	}
}

func TestGenerateJSONSchema_EnumType(t *testing.T) {
	_, properties := schemaProperties(t, nil)
	logLevel := properties["log-level"].(map[string]interface{})

	if logLevel["type"] != "string" {
		t.Errorf("log-level type = %v, want string", logLevel["type"])
	}
	enumValues, ok := logLevel["enum"].([]interface{})
	if !ok {
		t.Fatal("log-level should have enum values")
	}
	if len(enumValues) != 5 {
		t.Errorf("log-level enum has %d values, want 5", len(enumValues))
	}
}

func TestGenerateJSONSchema_URLFormat(t *testing.T) {
	_, properties := schemaProperties(t, nil)
	url := apiProperties(t, properties)["url"].(map[string]interface{})

	if url["format"] != "uri" {
		t.Errorf("api.url format = %v, want uri", url["format"])
	}
	if pattern, ok := url["pattern"].(string); !ok || pattern == "" {
		t.Error("api.url should have a pattern")
	}
}

func TestGenerateJSONSchema_SensitiveIsWriteOnly(t *testing.T) {
	_, properties := schemaProperties(t, nil)
	token := apiProperties(t, properties)["token"].(map[string]interface{})

	if token["writeOnly"] != true {
		t.Errorf("api.token writeOnly = %v, want true", token["writeOnly"])
	}
	if _, hasDefault := token["default"]; hasDefault {
		t.Error("api.token should not publish a default")
	}
}

func TestGenerateJSONSchemaForScope_UserOnly(t *testing.T) {
	scope := ScopeUser
	result, properties := schemaProperties(t, &scope)

	if title, _ := result["title"].(string); !strings.Contains(title, "User") {
		t.Errorf("Expected 'User' in title, got: %s", title)
	}

	if _, exists := properties["use-tui"]; !exists {
		t.Error("use-tui should be in user schema")
	}
	if _, exists := apiProperties(t, properties)["token"]; !exists {
		t.Error("api.token (user-only) should be in user schema")
	}
}

func TestGenerateJSONSchemaForScope_ProjectOnly(t *testing.T) {
	scope := ScopeProject
	result, properties := schemaProperties(t, &scope)

	if title, _ := result["title"].(string); !strings.Contains(title, "Project") {
		t.Errorf("Expected 'Project' in title, got: %s", title)
	}

	apiProps := apiProperties(t, properties)
	if _, exists := apiProps["id"]; !exists {
		t.Error("api.id should be in project schema")
	}
	if _, exists := apiProps["token"]; exists {
		t.Error("api.token (user-only) should NOT be in project schema")
	}
}
