package seed

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	types "github.com/acmecollege/registrar/internal/domain"
)

const scenarioEnv = "SEED_SCENARIO_YAML"

//go:embed scenario.yaml
var scenarioFS embed.FS

type Scenario struct {
	Name          string             `yaml:"scenario"`
	Version       int                `yaml:"version"`
	Courses       []CourseSpec       `yaml:"courses"`
	Professors    []ProfessorSpec    `yaml:"professors"`
	Students      []StudentSpec      `yaml:"students"`
	Registrations []RegistrationSpec `yaml:"registrations"`
}

type CourseSpec struct {
	Code        string `yaml:"code"`
	Title       string `yaml:"title"`
	Year        int    `yaml:"year"`
	Term        string `yaml:"term"`
	CreditUnits int    `yaml:"credit_units"`
	Online      int8   `yaml:"online"`
}

type ProfessorSpec struct {
	Ref        string `yaml:"ref"`
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	Department string `yaml:"department"`
}

type StudentSpec struct {
	Ref       string `yaml:"ref"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

// RegistrationSpec points at courses by code and at people by ref.
// Professor is optional.
type RegistrationSpec struct {
	Student      string `yaml:"student"`
	Course       string `yaml:"course"`
	Professor    string `yaml:"professor"`
	LetterGrade  string `yaml:"letter_grade"`
	NumericGrade int    `yaml:"numeric_grade"`
}

// Load reads the scenario named by SEED_SCENARIO_YAML, or the embedded one.
func Load() (*Scenario, error) {
	data, err := readScenario()
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse seed scenario: %w", err)
	}
	if err := validateScenario(&sc); err != nil {
		return nil, fmt.Errorf("invalid seed scenario: %w", err)
	}
	return &sc, nil
}

func readScenario() ([]byte, error) {
	if path := strings.TrimSpace(os.Getenv(scenarioEnv)); path != "" {
		return os.ReadFile(path)
	}
	return scenarioFS.ReadFile("scenario.yaml")
}

func validateScenario(sc *Scenario) error {
	if sc == nil {
		return errors.New("missing scenario")
	}
	if strings.TrimSpace(sc.Name) == "" {
		return errors.New("scenario name is required")
	}

	courses := map[string]bool{}
	for _, c := range sc.Courses {
		code := strings.TrimSpace(c.Code)
		if code == "" {
			return errors.New("course code is required")
		}
		if courses[code] {
			return fmt.Errorf("duplicate course code: %s", code)
		}
		if _, ok := types.ParseTerm(c.Term); !ok {
			return fmt.Errorf("course %s: unknown term %q", code, c.Term)
		}
		courses[code] = true
	}

	professors := map[string]bool{}
	for _, p := range sc.Professors {
		ref := strings.TrimSpace(p.Ref)
		if ref == "" {
			return errors.New("professor ref is required")
		}
		if professors[ref] {
			return fmt.Errorf("duplicate professor ref: %s", ref)
		}
		professors[ref] = true
	}

	students := map[string]bool{}
	for _, s := range sc.Students {
		ref := strings.TrimSpace(s.Ref)
		if ref == "" {
			return errors.New("student ref is required")
		}
		if students[ref] {
			return fmt.Errorf("duplicate student ref: %s", ref)
		}
		students[ref] = true
	}

	seen := map[string]bool{}
	for i, r := range sc.Registrations {
		if !students[strings.TrimSpace(r.Student)] {
			return fmt.Errorf("registration %d: unknown student %q", i, r.Student)
		}
		if !courses[strings.TrimSpace(r.Course)] {
			return fmt.Errorf("registration %d: unknown course %q", i, r.Course)
		}
		if ref := strings.TrimSpace(r.Professor); ref != "" && !professors[ref] {
			return fmt.Errorf("registration %d: unknown professor %q", i, r.Professor)
		}
		key := strings.TrimSpace(r.Student) + "/" + strings.TrimSpace(r.Course)
		if seen[key] {
			return fmt.Errorf("registration %d: duplicate registration %s", i, key)
		}
		seen[key] = true
	}
	return nil
}
