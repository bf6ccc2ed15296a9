package workout

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed plan.yaml
var defaultPlanYAML []byte

// Plan maps a weekday label ("Monday") to its exercises in display order.
type Plan map[string][]Exercise

// DefaultPlan returns the built-in weekly plan.
func DefaultPlan() Plan {
	plan, err := ParsePlan(defaultPlanYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded plan is invalid: %v", err))
	}
	return plan
}

// LoadPlan reads a YAML plan file. An empty path returns the default plan.
func LoadPlan(path string) (Plan, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPlan(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	plan, err := ParsePlan(data)
	if err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	return plan, nil
}

// ParsePlan decodes a YAML plan. Weekday keys are case-insensitive; anything
// that is not a weekday name is rejected, as is an exercise without a name.
func ParsePlan(data []byte) (Plan, error) {
	var raw map[string][]Exercise
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	plan := make(Plan, len(raw))
	for key, exercises := range raw {
		label, ok := NormalizeWeekday(key)
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", key)
		}
		for i, ex := range exercises {
			if strings.TrimSpace(ex.Name) == "" {
				return nil, fmt.Errorf("%s: exercise %d: %w", label, i+1, errMissingName)
			}
		}
		plan[label] = append(plan[label], exercises...)
	}
	return plan, nil
}

var errMissingName = errors.New("missing name")

// NormalizeWeekday maps user input such as " monday " onto the canonical
// label "Monday". The second result is false for anything that is not a day name.
func NormalizeWeekday(value string) (string, bool) {
	label := cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(value)))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == label {
			return label, true
		}
	}
	return label, false
}
