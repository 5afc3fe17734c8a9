package file_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/formgate/formgate/pkg/adapters/file"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const yamlConfig = `
formId: login
formTitle: Login
fields:
  - name: email
    label: Email
    controlType: input
    inputType: email
    validations:
      - name: required
        value: true
        errorMessage: Email is required
      - name: email
        value: true
        errorMessage: Please enter a valid email address
  - name: password
    label: Password
    controlType: input
    inputType: password
    validations:
      - name: minLength
        value: 8
        errorMessage: Password must be at least 8 characters
`

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "login.yaml", yamlConfig)

	cfg, err := file.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.FormID != "login" {
		t.Errorf("FormID = %q, want %q", cfg.FormID, "login")
	}
	if len(cfg.Fields) != 2 {
		t.Fatalf("len(Fields) = %d, want 2", len(cfg.Fields))
	}

	required := cfg.Fields[0].Validations[0]
	if !required.Value.IsTrue() {
		t.Errorf("required rule value = %+v, want boolean true", required.Value)
	}
	minLen := cfg.Fields[1].Validations[0]
	if n, ok := minLen.Value.AsNumber(); !ok || n != 8 {
		t.Errorf("minLength rule value = %+v, want number 8", minLen.Value)
	}
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeFile(t, "login.json", `{
		"formId": "login",
		"fields": [
			{
				"name": "email",
				"controlType": "input",
				"validations": [
					{"name": "pattern", "value": "^\\S+$", "errorMessage": "No spaces"}
				]
			}
		]
	}`)

	cfg, err := file.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if s, ok := cfg.Fields[0].Validations[0].Value.AsString(); !ok || s != `^\S+$` {
		t.Errorf("pattern rule value = %+v, want string %q", cfg.Fields[0].Validations[0].Value, `^\S+$`)
	}
}

func TestLoadConfigMissingFormID(t *testing.T) {
	path := writeFile(t, "bad.json", `{"formTitle": "No ID"}`)
	if _, err := file.LoadConfig(path); err == nil {
		t.Fatal("expected an error for a config without formId")
	}
}

func TestLoadSubmission(t *testing.T) {
	path := writeFile(t, "data.yaml", "email: a@b.com\nage: 30\nterms: true\n")

	data, err := file.LoadSubmission(path)
	if err != nil {
		t.Fatalf("LoadSubmission: %v", err)
	}
	if data["email"] != "a@b.com" {
		t.Errorf("email = %v", data["email"])
	}
	if data["terms"] != true {
		t.Errorf("terms = %v", data["terms"])
	}
}

func TestLoadSubmissionRejectsNonMapping(t *testing.T) {
	path := writeFile(t, "data.json", `["not", "a", "map"]`)
	if _, err := file.LoadSubmission(path); err == nil {
		t.Fatal("expected an error for a non-mapping submission")
	}
}
