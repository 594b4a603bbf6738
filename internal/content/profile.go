// Package content holds the static portfolio content: the profile shown in
// the hero and the sections below it.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultProfile []byte

// Domain errors for profile loading.
var (
	// ErrNoName indicates a profile without a display name.
	ErrNoName = errors.New("content: profile has no name")

	// ErrNoRoles indicates a profile without role titles for the hero.
	ErrNoRoles = errors.New("content: profile has no roles")

	// ErrSkillLevel indicates a skill level outside 0..100.
	ErrSkillLevel = errors.New("content: skill level out of range")
)

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Entry struct {
	Period string `yaml:"period"`
	Title  string `yaml:"title"`
	Detail string `yaml:"detail"`
}

type Project struct {
	Name     string   `yaml:"name"`
	Summary  string   `yaml:"summary"`
	Features []string `yaml:"features"`
	Stack    []string `yaml:"stack"`
	URL      string   `yaml:"url"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

// Fraction returns the skill level as a value in [0, 1].
func (s Skill) Fraction() float64 { return float64(s.Level) / 100 }

type Profile struct {
	Name      string    `yaml:"name"`
	Roles     []string  `yaml:"roles"`
	Links     []Link    `yaml:"links"`
	About     []string  `yaml:"about"`
	Education []Entry   `yaml:"education"`
	Projects  []Project `yaml:"projects"`
	Skills    []Skill   `yaml:"skills"`
	Social    []Link    `yaml:"social"`
}

// Default returns the built-in profile.
func Default() *Profile {
	p, err := Parse(defaultProfile)
	if err != nil {
		panic(fmt.Sprintf("content: embedded profile: %v", err))
	}
	return p
}

// Load reads and validates a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) Validate() error {
	if p.Name == "" {
		return ErrNoName
	}
	if len(p.Roles) == 0 {
		return ErrNoRoles
	}
	for _, s := range p.Skills {
		if s.Level < 0 || s.Level > 100 {
			return fmt.Errorf("%w: %s=%d", ErrSkillLevel, s.Name, s.Level)
		}
	}
	return nil
}
