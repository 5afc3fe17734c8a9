package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/formgate/formgate/pkg/domain"
)

// LoadConfig reads a form configuration from a YAML or JSON file.
// The format is chosen by extension; anything not .yaml/.yml is treated
// as JSON.
func LoadConfig(path string) (*domain.FormConfig, error) {
	var cfg domain.FormConfig
	if err := loadInto(path, &cfg); err != nil {
		return nil, err
	}
	if cfg.FormID == "" {
		return nil, fmt.Errorf("%s: form config missing formId", path)
	}
	return &cfg, nil
}

// LoadSchema reads a full schema envelope from a YAML or JSON file.
func LoadSchema(path string) (*domain.FormSchema, error) {
	var schema domain.FormSchema
	if err := loadInto(path, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// LoadSubmission reads form data from a YAML or JSON file as the untyped
// key/value map the validation engine consumes.
func LoadSubmission(path string) (map[string]any, error) {
	raw, err := readRaw(path)
	if err != nil {
		return nil, err
	}
	data, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: submission must be a mapping, got %T", path, raw)
	}
	return data, nil
}

func loadInto(path string, out any) error {
	raw, err := readRaw(path)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			ruleValueHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func readRaw(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var raw any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	return raw, nil
}

var ruleValueType = reflect.TypeOf(domain.RuleValue{})

// ruleValueHook tags raw scalars as RuleValue during map decoding, mirroring
// what UnmarshalJSON does on the wire path.
func ruleValueHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != ruleValueType {
		return data, nil
	}
	return domain.RuleValueFrom(data)
}
