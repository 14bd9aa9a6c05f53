package approval

import (
	"fmt"
	"strings"
	"time"

	"github.com/mmynk/aidledger/internal/models"
)

// validateIndividual checks sub and trims its free-text fields in place.
func validateIndividual(sub *models.IndividualSubmission) error {
	ind := &sub.Individual
	ind.FirstName = strings.TrimSpace(ind.FirstName)
	ind.LastName = strings.TrimSpace(ind.LastName)
	ind.IDNumber = strings.TrimSpace(ind.IDNumber)
	ind.District = strings.TrimSpace(ind.District)
	sub.NewFamilyName = strings.TrimSpace(sub.NewFamilyName)

	switch {
	case ind.FirstName == "", ind.LastName == "":
		return fmt.Errorf("%w: first and last name are required", ErrInvalid)
	case ind.IDNumber == "":
		return fmt.Errorf("%w: id number is required", ErrInvalid)
	case ind.District == "":
		return fmt.Errorf("%w: district is required", ErrInvalid)
	case ind.FamilyID != "" && sub.NewFamilyName != "":
		return fmt.Errorf("%w: set either family_id or new_family_name, not both", ErrInvalid)
	case len(sub.Children) > 0 && ind.FamilyID == "" && sub.NewFamilyName == "":
		return fmt.Errorf("%w: children require a family", ErrInvalid)
	}

	for i := range sub.Children {
		c := &sub.Children[i]
		c.FirstName = strings.TrimSpace(c.FirstName)
		c.LastName = strings.TrimSpace(c.LastName)
		if c.FirstName == "" {
			return fmt.Errorf("%w: children[%d]: first name is required", ErrInvalid, i)
		}
		if _, err := parseDate(c.DateOfBirth); err != nil {
			return fmt.Errorf("%w: children[%d]: %v", ErrInvalid, i, err)
		}
	}
	for i := range sub.Needs {
		if err := validateNeed(&sub.Needs[i], false); err != nil {
			return fmt.Errorf("needs[%d]: %w", i, err)
		}
	}
	return nil
}

// validateNeed checks n. Standalone needs must name their individual.
func validateNeed(n *models.NeedSubmission, standalone bool) error {
	n.Description = strings.TrimSpace(n.Description)
	switch {
	case standalone && strings.TrimSpace(n.IndividualID) == "":
		return fmt.Errorf("%w: individual_id is required", ErrInvalid)
	case !n.Category.Valid():
		return fmt.Errorf("%w: unknown need category %q", ErrInvalid, n.Category)
	case !n.Priority.Valid():
		return fmt.Errorf("%w: unknown need priority %q", ErrInvalid, n.Priority)
	case n.Description == "":
		return fmt.Errorf("%w: description is required", ErrInvalid)
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date_of_birth: expected YYYY-MM-DD, got %q", s)
	}
	return t, nil
}
