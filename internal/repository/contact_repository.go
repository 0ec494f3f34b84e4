// internal/repository/contact_repository.go
package repository

import (
	"encoding/json"
	"os"

	"github.com/pressquest/pressquest-backend/internal/model"
)

// ContactRepositoryInterface defines methods used by services
type ContactRepositoryInterface interface {
	GetByID(id string) (*model.JournalistContact, error)
	ListAll() ([]model.JournalistContact, error)
}

// ContactRepository is a read-mostly in-memory directory loaded at startup.
type ContactRepository struct {
	contacts []model.JournalistContact
}

func NewContactRepository(contacts []model.JournalistContact) *ContactRepository {
	if len(contacts) == 0 {
		contacts = DefaultDirectory()
	}
	return &ContactRepository{contacts: contacts}
}

// LoadContactsFile reads a contact directory from a JSON file.
func LoadContactsFile(path string) ([]model.JournalistContact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var contacts []model.JournalistContact
	if err := json.Unmarshal(raw, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// GetByID fetches a contact by ID, nil when not found
func (r *ContactRepository) GetByID(id string) (*model.JournalistContact, error) {
	for _, c := range r.contacts {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

// ListAll returns the directory in its original order
func (r *ContactRepository) ListAll() ([]model.JournalistContact, error) {
	out := make([]model.JournalistContact, len(r.contacts))
	copy(out, r.contacts)
	return out, nil
}

// DefaultDirectory is the built-in directory used when no contacts file is
// configured.
func DefaultDirectory() []model.JournalistContact {
	return []model.JournalistContact{
		{ID: "c-1", Name: "Sarah Chen", Outlet: "TechCrunch", Focus: "startups, venture funding", Category: model.ContactCategoryJournalist},
		{ID: "c-2", Name: "Marcus Webb", Outlet: "The Verge", Focus: "consumer tech, AI products", Category: model.ContactCategoryJournalist},
		{ID: "c-3", Name: "Priya Nair", Outlet: "Forbes", Focus: "fintech, funding rounds", Category: model.ContactCategoryJournalist},
		{ID: "c-4", Name: "Tom Oduya", Outlet: "Wired", Focus: "AI, machine learning research", Category: model.ContactCategoryJournalist},
		{ID: "c-5", Name: "Elena Fischer", Outlet: "Bloomberg", Focus: "markets, enterprise software", Category: model.ContactCategoryJournalist},
		{ID: "c-6", Name: "Jake Moreno", Outlet: "Product Hunt Daily", Focus: "product launches, indie makers", Category: model.ContactCategoryInfluencer},
		{ID: "c-7", Name: "Aisha Bello", Outlet: "SaaS Weekly", Focus: "SaaS growth, B2B marketing", Category: model.ContactCategoryInfluencer},
		{ID: "c-8", Name: "David Kim", Outlet: "Axios", Focus: "deals, venture capital", Category: model.ContactCategoryJournalist},
	}
}

var _ ContactRepositoryInterface = (*ContactRepository)(nil)
