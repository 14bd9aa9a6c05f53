// Package seed loads YAML fixtures into a store: staff accounts, the
// registry, and historical distributions.
//
// Records refer to each other by fixture-local keys:
//
//	individuals:
//	  - key: rana
//	    first_name: Rana
//	    ...
//	families:
//	  - name: Khoury
//	    members: [{individual: rana, role: parent}]
//	distributions:
//	  - recipients:
//	      - individual: rana
//	      - additional_of: rana
//	        index: 0
//	      - walk_in: Sara
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Fixture is the top-level document.
type Fixture struct {
	Users         []User         `yaml:"users"`
	Individuals   []Individual   `yaml:"individuals"`
	Families      []Family       `yaml:"families"`
	Children      []Child        `yaml:"children"`
	Distributions []Distribution `yaml:"distributions"`
}

type User struct {
	Email       string `yaml:"email"`
	DisplayName string `yaml:"display_name"`
	Password    string `yaml:"password"`
	Role        string `yaml:"role"`
}

type AdditionalMember struct {
	Name        string `yaml:"name"`
	DateOfBirth string `yaml:"date_of_birth"`
	Gender      string `yaml:"gender"`
	Relation    string `yaml:"relation"`
	JobTitle    string `yaml:"job_title"`
	PhoneNumber string `yaml:"phone_number"`
}

type Individual struct {
	Key               string             `yaml:"key"`
	FirstName         string             `yaml:"first_name"`
	LastName          string             `yaml:"last_name"`
	IDNumber          string             `yaml:"id_number"`
	DateOfBirth       string             `yaml:"date_of_birth"`
	Gender            string             `yaml:"gender"`
	Phone             string             `yaml:"phone"`
	District          string             `yaml:"district"`
	Address           string             `yaml:"address"`
	ListStatus        string             `yaml:"list_status"`
	AssistanceTypes   []string           `yaml:"assistance_types"`
	AdditionalMembers []AdditionalMember `yaml:"additional_members"`
}

type FamilyMember struct {
	Individual string `yaml:"individual"`
	Role       string `yaml:"role"`
}

type Family struct {
	Name           string         `yaml:"name"`
	Status         string         `yaml:"status"`
	District       string         `yaml:"district"`
	Phone          string         `yaml:"phone"`
	Address        string         `yaml:"address"`
	PrimaryContact string         `yaml:"primary_contact"`
	Members        []FamilyMember `yaml:"members"`
}

type Child struct {
	Key         string `yaml:"key"`
	Parent      string `yaml:"parent"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	DateOfBirth string `yaml:"date_of_birth"`
	Gender      string `yaml:"gender"`
	SchoolStage string `yaml:"school_stage"`
}

// Recipient names exactly one of Individual, Child, AdditionalOf or WalkIn.
type Recipient struct {
	Individual   string `yaml:"individual"`
	Child        string `yaml:"child"`
	AdditionalOf string `yaml:"additional_of"`
	Index        int    `yaml:"index"`
	WalkIn       string `yaml:"walk_in"`
	Quantity     int    `yaml:"quantity"`
	Notes        string `yaml:"notes"`
}

type Distribution struct {
	Date         string           `yaml:"date"`
	AidType      string           `yaml:"aid_type"`
	Description  string           `yaml:"description"`
	Status       string           `yaml:"status"`
	Quantity     int              `yaml:"quantity"`
	Value        *decimal.Decimal `yaml:"value"`
	ValuePerUnit *decimal.Decimal `yaml:"value_per_unit"`
	CreatedBy    string           `yaml:"created_by"` // user email
	Recipients   []Recipient      `yaml:"recipients"`
}

// Load reads a fixture file.
func Load(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a fixture. Unknown fields are rejected.
func Decode(r io.Reader) (*Fixture, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return &fx, nil
}
