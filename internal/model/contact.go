// internal/model/contact.go
package model

const (
	ContactCategoryJournalist = "journalist"
	ContactCategoryInfluencer = "influencer"
)

// JournalistContact is a directory entry. The directory is reference data and
// is not mutated by normal operations.
type JournalistContact struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Outlet   string `json:"outlet"`
	Focus    string `json:"focus"`
	Category string `json:"category"` // journalist, influencer
}
