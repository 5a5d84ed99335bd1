package memory

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"commerce_engine/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

type leadSeed struct {
	Leads []struct {
		ID        string `yaml:"id"`
		Name      string `yaml:"name"`
		Email     string `yaml:"email"`
		CompanyID string `yaml:"company_id"`
	} `yaml:"leads"`
}

// ParseLeads reads a YAML document of the form:
//
//	leads:
//	  - id: lead-1
//	    name: Ana
//	    email: ana@example.com
//	    company_id: cmp-1
func ParseLeads(raw []byte) ([]entities.Lead, error) {
	var seed leadSeed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse leads: %w", err)
	}
	leads := make([]entities.Lead, 0, len(seed.Leads))
	for i, l := range seed.Leads {
		id := strings.TrimSpace(l.ID)
		if id == "" {
			return nil, fmt.Errorf("lead %d has no id", i)
		}
		leads = append(leads, entities.Lead{
			ID:        id,
			Name:      strings.TrimSpace(l.Name),
			Email:     strings.TrimSpace(l.Email),
			CompanyID: strings.TrimSpace(l.CompanyID),
		})
	}
	return leads, nil
}

// LoadLeadDirectory builds a LeadDirectory from a YAML file. An empty path yields
// an empty directory.
func LoadLeadDirectory(path string) (*LeadDirectory, error) {
	if strings.TrimSpace(path) == "" {
		return NewLeadDirectory(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read leads: %w", err)
	}
	leads, err := ParseLeads(raw)
	if err != nil {
		return nil, err
	}
	if len(leads) == 0 {
		return nil, errors.New("leads file has no leads")
	}
	return NewLeadDirectory(leads...), nil
}
