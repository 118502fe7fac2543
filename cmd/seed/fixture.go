package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"myhealth/rehab-api/internal/domain"
)

type fixtureFile struct {
	Exercises []fixtureExercise `yaml:"exercises"`
}

type fixtureExercise struct {
	Name         string      `yaml:"name"`
	Description  string      `yaml:"description"`
	TargetArea   fixtureArea `yaml:"targetArea"`
	Difficulty   string      `yaml:"difficulty"`
	Duration     int         `yaml:"duration"`
	Instructions []string    `yaml:"instructions"`
	Precautions  []string    `yaml:"precautions"`
	ImageURL     string      `yaml:"imageUrl"`
	VideoURL     string      `yaml:"videoUrl"`
}

// fixtureArea accepts `targetArea: knee` as well as `targetArea: [knee, hip]`.
type fixtureArea struct {
	domain.TargetArea
}

func (a *fixtureArea) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		a.TargetArea = domain.SingleArea(value.Value)
		return nil
	case yaml.SequenceNode:
		var areas []string
		if err := value.Decode(&areas); err != nil {
			return err
		}
		a.TargetArea = domain.MultipleAreas(areas...)
		return nil
	default:
		return fmt.Errorf("line %d: targetArea must be a string or a list of strings", value.Line)
	}
}

func (f fixtureExercise) toDomain() *domain.Exercise {
	return &domain.Exercise{
		Name:         f.Name,
		Description:  f.Description,
		TargetArea:   f.TargetArea.TargetArea,
		Difficulty:   f.Difficulty,
		Duration:     f.Duration,
		Instructions: f.Instructions,
		Precautions:  f.Precautions,
		ImageURL:     f.ImageURL,
		VideoURL:     f.VideoURL,
	}
}

func readFixture(r io.Reader) ([]*domain.Exercise, error) {
	var file fixtureFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	exercises := make([]*domain.Exercise, 0, len(file.Exercises))
	for _, f := range file.Exercises {
		exercises = append(exercises, f.toDomain())
	}
	return exercises, nil
}
