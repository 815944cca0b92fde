package config

import (
	"fmt"

	"github.com/knadh/koanf/v2"

	"github.com/yacobolo/cssclamp"
)

// decode converts loaded values into a Result
func decode(k *koanf.Koanf) (*Result, error) {
	result := &Result{}

	fields := []struct {
		key  string
		dest *cssclamp.Size
	}{
		{"minWidth", &result.Config.MinWidth},
		{"maxWidth", &result.Config.MaxWidth},
		{"root", &result.Config.Root},
	}
	for _, f := range fields {
		if !k.Exists(f.key) {
			continue
		}
		size, err := cssclamp.SizeOf(k.Get(f.key))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dest = size
	}

	result.Prefix = k.String("prefix")

	steps, err := decodeScale(k.Get("scale"))
	if err != nil {
		return nil, err
	}
	result.Scale = steps

	return result, nil
}

// decodeScale reads the scale list. YAML yields []interface{} of maps,
// TOML arrays of tables yield []map[string]interface{}.
func decodeScale(raw interface{}) ([]cssclamp.Step, error) {
	var entries []map[string]interface{}

	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []map[string]interface{}:
		entries = v
	case []interface{}:
		for i, item := range v {
			m, ok := item.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("scale[%d]: expected a table with name, min and max, got %T", i, item)
			}
			entries = append(entries, m)
		}
	default:
		return nil, fmt.Errorf("scale: expected a list, got %T", raw)
	}

	steps := make([]cssclamp.Step, 0, len(entries))
	for i, m := range entries {
		name, _ := m["name"].(string)

		minSize, err := cssclamp.SizeOf(m["min"])
		if err != nil {
			return nil, fmt.Errorf("scale[%d].min: %w", i, err)
		}
		maxSize, err := cssclamp.SizeOf(m["max"])
		if err != nil {
			return nil, fmt.Errorf("scale[%d].max: %w", i, err)
		}

		steps = append(steps, cssclamp.Step{Name: name, Min: minSize, Max: maxSize})
	}
	return steps, nil
}
