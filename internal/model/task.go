package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var ErrInvalidTask = errors.New("invalid task")

// Effort is the coarse size of a task.
type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// ParseEffort accepts any casing of low, medium or high.
func ParseEffort(s string) (Effort, error) {
	switch e := Effort(strings.ToLower(strings.TrimSpace(s))); e {
	case EffortLow, EffortMedium, EffortHigh:
		return e, nil
	}
	return "", fmt.Errorf("%w: unknown effort %q", ErrInvalidTask, s)
}

func (e Effort) String() string {
	return string(e)
}

func (e *Effort) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: effort must be a string", ErrInvalidTask)
	}
	parsed, err := ParseEffort(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// TaskData is the caller-supplied part of a task. It never carries an id.
type TaskData struct {
	Name   string `json:"name" validate:"notblank"`
	Effort Effort `json:"effort" validate:"oneof=low medium high"`
}

func (d TaskData) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTask, err)
	}
	return nil
}

// Task is a stored TaskData plus the id the repository assigned to it.
type Task struct {
	ID string `json:"id"`
	TaskData
}
