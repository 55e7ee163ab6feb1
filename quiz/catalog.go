package quiz

import (
	"errors"
	"fmt"
)

// Difficulty of a quiz as shown on the quiz card
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyExpert Difficulty = "Expert"
)

var ErrQuizNotFound = errors.New("quiz not found")

// Question is a single multiple-choice question
type Question struct {
	ID          int      `json:"id"`
	Prompt      string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"-"`
	Explanation string   `json:"-"`
}

// Definition is an immutable quiz definition loaded into the catalog
type Definition struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Duration    int        `json:"duration"` // time budget in minutes
	Questions   []Question `json:"questions"`
}

// Validate checks the catalog-load invariants: at least one question,
// at least two options per question and a correct index inside its own
// option list. Violations are rejected, never silently corrected.
func (d *Definition) Validate() error {
	if d.ID == "" {
		return errors.New("quiz id is required")
	}
	if len(d.Questions) == 0 {
		return fmt.Errorf("quiz %q has no questions", d.ID)
	}
	switch d.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
	default:
		return fmt.Errorf("quiz %q has unknown difficulty %q", d.ID, d.Difficulty)
	}
	for i, q := range d.Questions {
		if len(q.Options) < 2 {
			return fmt.Errorf("quiz %q question %d needs at least 2 options", d.ID, i)
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("quiz %q question %d has correct index %d out of range", d.ID, i, q.Correct)
		}
	}
	return nil
}

// Catalog holds the validated quiz definitions, in load order
type Catalog struct {
	defs []Definition
	byID map[string]*Definition
}

// NewCatalog validates and indexes the given definitions
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{
		defs: make([]Definition, 0, len(defs)),
		byID: make(map[string]*Definition, len(defs)),
	}
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byID[def.ID]; exists {
			return nil, fmt.Errorf("duplicate quiz id %q", def.ID)
		}
		c.defs = append(c.defs, def)
		c.byID[def.ID] = &c.defs[len(c.defs)-1]
	}
	return c, nil
}

// Get returns the definition for the given id
func (c *Catalog) Get(id string) (*Definition, error) {
	def, ok := c.byID[id]
	if !ok {
		return nil, ErrQuizNotFound
	}
	return def, nil
}

// List returns all definitions in load order
func (c *Catalog) List() []Definition {
	return c.defs
}
