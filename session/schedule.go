package session

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ScheduleEntry is one planned agent substitution as configured on disk: at
// game index Game, seat Seat is handed to a freshly built agent of the named
// kind. The caller turns entries into Substitutions by constructing the
// agents.
type ScheduleEntry struct {
	Game  int    `yaml:"game"`
	Seat  int    `yaml:"seat"`
	Agent string `yaml:"agent"`
}

type scheduleFile struct {
	Substitutions []ScheduleEntry `yaml:"substitutions"`
}

// LoadSchedule reads a substitution schedule from a YAML file.
func LoadSchedule(path string) ([]ScheduleEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading schedule %s", path)
	}
	var f scheduleFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrapf(err, "parsing schedule %s", path)
	}
	for _, e := range f.Substitutions {
		if e.Game < 0 {
			return nil, errors.Errorf("schedule %s: negative game index %d", path, e.Game)
		}
		if e.Seat != 0 && e.Seat != 1 {
			return nil, errors.Errorf("schedule %s: seat %d out of range", path, e.Seat)
		}
		if e.Agent == "" {
			return nil, errors.Errorf("schedule %s: entry for game %d names no agent", path, e.Game)
		}
	}
	return f.Substitutions, nil
}
