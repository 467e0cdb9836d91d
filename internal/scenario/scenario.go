// Package scenario drives the hotel services through a scripted sequence of
// operations. Scripts are either the built-in demo or a YAML file.
package scenario

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Operation names accepted in script steps.
const (
	OpSetRoom = "set_room"
	OpSetUser = "set_user"
	OpBook    = "book"
)

// Step is one scripted operation. Which fields apply depends on Op:
// set_room uses Room/Category/Price, set_user uses User/Balance, and
// book uses User/Room/CheckIn/CheckOut. Dates are strings in the runner's
// configured format; an empty date is passed through as absent.
type Step struct {
	Op       string `yaml:"op"`
	Room     int    `yaml:"room,omitempty"`
	User     int    `yaml:"user,omitempty"`
	Category string `yaml:"category,omitempty"`
	Price    int    `yaml:"price,omitempty"`
	Balance  int    `yaml:"balance,omitempty"`
	CheckIn  string `yaml:"check_in,omitempty"`
	CheckOut string `yaml:"check_out,omitempty"`
}

// Script is a named sequence of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Load reads a script from a YAML file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}
	return &s, nil
}

// Demo returns the built-in demonstration script: three rooms, two users,
// five booking attempts (two of which fail), and a room redefinition that
// must leave the earlier booking's snapshot untouched.
func Demo() *Script {
	return &Script{
		Name: "demo",
		Steps: []Step{
			{Op: OpSetRoom, Room: 1, Category: "STANDARD", Price: 1000},
			{Op: OpSetRoom, Room: 2, Category: "JUNIOR", Price: 2000},
			{Op: OpSetRoom, Room: 3, Category: "SUITE", Price: 3000},
			{Op: OpSetUser, User: 1, Balance: 5000},
			{Op: OpSetUser, User: 2, Balance: 10000},
			{Op: OpBook, User: 1, Room: 2, CheckIn: "30/06/2026", CheckOut: "07/07/2026"},
			{Op: OpBook, User: 1, Room: 2, CheckIn: "07/07/2026", CheckOut: "30/06/2026"},
			{Op: OpBook, User: 1, Room: 1, CheckIn: "07/07/2026", CheckOut: "08/07/2026"},
			{Op: OpBook, User: 2, Room: 1, CheckIn: "07/07/2026", CheckOut: "09/07/2026"},
			{Op: OpBook, User: 2, Room: 3, CheckIn: "07/07/2026", CheckOut: "08/07/2026"},
			{Op: OpSetRoom, Room: 1, Category: "SUITE", Price: 10000},
		},
	}
}
