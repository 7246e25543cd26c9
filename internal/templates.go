package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Template pre-fills the planned half of a session.
type Template struct {
	Key            string      `yaml:"key"`
	Name           string      `yaml:"name"`
	Type           WorkoutType `yaml:"type"`
	PlannedMinutes int         `yaml:"plannedMinutes"`
	PlannedZone    Zone        `yaml:"plannedZone"`
	PlannedRPE     int         `yaml:"plannedRpe"`
}

// templateFile is the shape of the user's YAML template catalog.
type templateFile struct {
	Templates []Template `yaml:"templates"`
}

var builtinTemplates = []Template{
	{Key: "easy50", Name: "Easy run 50 min", Type: WorkoutEasyRun, PlannedMinutes: 50, PlannedZone: ZoneZ2, PlannedRPE: 4},
	{Key: "recovery40", Name: "Recovery jog 40 min", Type: WorkoutEasyRun, PlannedMinutes: 40, PlannedZone: ZoneZ1, PlannedRPE: 2},

	{Key: "surges6x1", Name: "Surges 6x1 min", Type: WorkoutQuality, PlannedMinutes: 45, PlannedZone: ZoneZ4, PlannedRPE: 7},
	{Key: "surges8x1", Name: "Surges 8x1 min", Type: WorkoutQuality, PlannedMinutes: 50, PlannedZone: ZoneZ4, PlannedRPE: 7},
	{Key: "surges10x1", Name: "Surges 10x1 min", Type: WorkoutQuality, PlannedMinutes: 55, PlannedZone: ZoneZ4, PlannedRPE: 8},

	{Key: "threshold3x8", Name: "Threshold 3x8 min", Type: WorkoutQuality, PlannedMinutes: 55, PlannedZone: ZoneZ3, PlannedRPE: 7},
	{Key: "hills8", Name: "Hill repeats x8", Type: WorkoutHills, PlannedMinutes: 55, PlannedZone: ZoneZ4, PlannedRPE: 8},

	{Key: "long90", Name: "Long run 1h30", Type: WorkoutLongRun, PlannedMinutes: 90, PlannedZone: ZoneZ2, PlannedRPE: 5},
	{Key: "long105", Name: "Long run 1h45", Type: WorkoutLongRun, PlannedMinutes: 105, PlannedZone: ZoneZ2, PlannedRPE: 5},
	{Key: "long120", Name: "Long run 2h", Type: WorkoutLongRun, PlannedMinutes: 120, PlannedZone: ZoneZ2, PlannedRPE: 6},

	{Key: "gravel120", Name: "Gravel ride 2h Z2", Type: WorkoutGravel, PlannedMinutes: 120, PlannedZone: ZoneZ2, PlannedRPE: 4},
	{Key: "gravel150", Name: "Gravel ride 2h30 Z2", Type: WorkoutGravel, PlannedMinutes: 150, PlannedZone: ZoneZ2, PlannedRPE: 5},
}

// BuiltinTemplates returns a copy of the builtin workout catalog.
func BuiltinTemplates() []Template {
	out := make([]Template, len(builtinTemplates))
	copy(out, builtinTemplates)
	return out
}

// LoadTemplates returns the builtin catalog merged with the user's YAML
// catalog at path, if it exists. User entries with a builtin key override
// the builtin; new keys are appended in file order.
func LoadTemplates(path string) ([]Template, error) {
	templates := BuiltinTemplates()
	if path == "" {
		return templates, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return templates, nil
	}
	if err != nil {
		return nil, &TemplateError{Path: path, Err: err}
	}

	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &TemplateError{Path: path, Err: fmt.Errorf("parse failed: %w", err)}
	}

	for _, t := range file.Templates {
		if t.Key == "" {
			LogWarn("Skipping template without key in %s", path)
			continue
		}
		replaced := false
		for i := range templates {
			if templates[i].Key == t.Key {
				templates[i] = t
				replaced = true
				break
			}
		}
		if !replaced {
			templates = append(templates, t)
		}
	}
	return templates, nil
}

// FindTemplate looks a template up by key.
func FindTemplate(templates []Template, key string) (Template, bool) {
	for _, t := range templates {
		if t.Key == key {
			return t, true
		}
	}
	return Template{}, false
}

// Apply copies the template's planned fields onto s, leaving everything
// else (date, actuals, wellness) alone.
func (t Template) Apply(s *Session) {
	s.Type = t.Type
	s.WorkoutName = t.Name
	s.PlannedMinutes = t.PlannedMinutes
	s.PlannedZone = t.PlannedZone
	rpe := t.PlannedRPE
	s.PlannedRPE = &rpe
}
