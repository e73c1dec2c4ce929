// Package people is the sample data set for the search box demo
package people

import (
	"fmt"
	"strings"
	"time"

	"autosearch/internal/config"
)

// ShortDate is the layout used when matching and showing birth dates
const ShortDate = "1/2/2006"

// Person is a sample record
type Person struct {
	Name        string
	DateOfBirth time.Time
	Occupation  string
}

func (p Person) String() string {
	return p.Name
}

// Describe renders a result row
func (p Person) Describe() string {
	return fmt.Sprintf("%s · %s · %s", p.Name, p.Occupation, p.DateOfBirth.Format(ShortDate))
}

// FromConfig converts the configured records
func FromConfig(records []config.Person) ([]Person, error) {
	out := make([]Person, 0, len(records))
	for i, r := range records {
		dob, err := time.Parse(time.DateOnly, r.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("person %d (%s): bad date_of_birth: %w", i, r.Name, err)
		}
		out = append(out, Person{Name: r.Name, DateOfBirth: dob, Occupation: r.Occupation})
	}
	return out, nil
}

// Filter matches on name or occupation ignoring case, or on the birth
// date in short form
func Filter(p Person, query string) bool {
	upper := strings.ToUpper(query)
	return strings.Contains(strings.ToUpper(p.Name), upper) ||
		strings.Contains(p.DateOfBirth.Format(ShortDate), query) ||
		strings.Contains(strings.ToUpper(p.Occupation), upper)
}

// Text is the haystack used by the fuzzy filter
func Text(p Person) string {
	return strings.Join([]string{p.Name, p.Occupation, p.DateOfBirth.Format(ShortDate)}, " ")
}
