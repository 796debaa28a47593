package artifact

import (
	"strings"

	"github.com/pkg/errors"
)

// Metadata is the canonical, normalized shape every metric scores against.
// All fields are optional except where a metric documents otherwise; absent
// fields keep their zero value.
type Metadata struct {
	RepoSizeBytes  int64    `json:"repo_size_bytes" yaml:"repoSizeBytes"`
	License        string   `json:"license" yaml:"license"`
	Readme         string   `json:"readme" yaml:"readme"`
	Maintainers    []string `json:"maintainers" yaml:"maintainers"`
	HasCode        bool     `json:"has_code" yaml:"hasCode"`
	HasDataset     bool     `json:"has_dataset" yaml:"hasDataset"`
	Tags           []string `json:"tags" yaml:"tags"`
	Author         string   `json:"author" yaml:"author"`
	Downloads      int64    `json:"downloads" yaml:"downloads"`
	ModelSizeBytes int64    `json:"model_size_bytes" yaml:"modelSizeBytes"`
}

// Normalize converts a raw metadata payload into canonical Metadata.
// Two shapes are recognized: GitHub repository payloads (identified by a
// full_name field, size reported in KB) and Hugging Face model payloads
// (modelSize/usedStorage reported in bytes). All shape branching happens
// here, never inside a metric.
func Normalize(raw map[string]any) (*Metadata, error) {
	if raw == nil {
		return nil, errors.New("raw metadata required")
	}

	m := &Metadata{
		// Both sources imply published code, and the original catalog treats
		// dataset presence as given unless the payload says otherwise.
		HasCode:    true,
		HasDataset: true,
	}

	if _, gh := raw["full_name"]; gh {
		kb, err := toInt64(raw["size"])
		if err != nil {
			return nil, errors.Wrap(err, "github size field")
		}
		m.RepoSizeBytes = kb * 1024
		m.Maintainers = []string{nestedString(raw, "owner", "login")}
	} else {
		size, err := modelSize(raw)
		if err != nil {
			return nil, err
		}
		m.RepoSizeBytes = size
		m.ModelSizeBytes = size
		m.Author = stringField(raw["author"])
		m.Maintainers = []string{m.Author}
	}

	m.License = licenseField(raw["license"])

	m.Readme = stringField(raw["readme"])
	if strings.TrimSpace(m.Readme) == "" {
		m.Readme = nestedString(raw, "cardData", "content")
	}

	m.Tags = stringSlice(raw["tags"])
	if len(m.Tags) == 0 {
		m.Tags = stringSlice(raw["topics"])
	}

	if v, ok := raw["downloads"]; ok {
		if d, err := toInt64(v); err == nil {
			m.Downloads = d
		}
	}
	if v, ok := raw["has_code"]; ok {
		m.HasCode = truthy(v)
	}
	if v, ok := raw["has_dataset"]; ok {
		m.HasDataset = truthy(v)
	}

	return m, nil
}

// modelSize resolves the Hugging Face size field chain:
// modelSize, then usedStorage, then the sum of safetensors or siblings entries.
func modelSize(raw map[string]any) (int64, error) {
	for _, key := range []string{"modelSize", "usedStorage"} {
		if v, ok := raw[key]; ok && v != nil {
			n, err := toInt64(v)
			if err != nil {
				return 0, errors.Wrapf(err, "huggingface %s field", key)
			}
			if n > 0 {
				return n, nil
			}
		}
	}

	for _, key := range []string{"safetensors", "siblings"} {
		if total := sumSizes(raw[key]); total > 0 {
			return total, nil
		}
	}

	return 0, nil
}

func sumSizes(v any) int64 {
	list, ok := v.([]any)
	if !ok {
		return 0
	}
	var total int64
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if n, err := toInt64(entry["size"]); err == nil {
			total += n
		}
	}
	return total
}

// licenseField accepts either a flat string or a nested {spdx_id} object.
func licenseField(v any) string {
	switch l := v.(type) {
	case string:
		return l
	case map[string]any:
		return stringField(l["spdx_id"])
	default:
		return ""
	}
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	case nil:
		return 0, nil
	default:
		return 0, errors.Errorf("not a number: %v (%T)", v, v)
	}
}

func stringField(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func nestedString(raw map[string]any, key, sub string) string {
	if obj, ok := raw[key].(map[string]any); ok {
		return stringField(obj[sub])
	}
	return ""
}

func stringSlice(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b != ""
	case int:
		return b != 0
	case int64:
		return b != 0
	case float64:
		return b != 0
	default:
		return v != nil
	}
}
