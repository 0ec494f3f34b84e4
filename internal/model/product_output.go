// internal/model/product_output.go
package model

import "time"

const (
	ProductTypeXPost         = "x-post"
	ProductTypeLinkedInPost  = "linkedin-post"
	ProductTypeInstagramPost = "instagram-post"
	ProductTypePressRelease  = "press-release"
	ProductTypeBlogPost      = "blog-post"
	ProductTypeWebsiteCopy   = "website-copy"
	ProductTypeInvestorDoc   = "investor-doc"
)

const (
	ProductStatusDraft     = "draft"
	ProductStatusReady     = "ready"
	ProductStatusPublished = "published"
)

// ProductOutput is a generated or hand-written content artifact tied to a
// quest. WordCount and CharCount are derived from Content and recomputed on
// every edit, never set independently.
type ProductOutput struct {
	ID              string    `json:"id"`
	QuestID         string    `json:"quest_id"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	WordCount       int       `json:"word_count"`
	CharCount       int       `json:"char_count"`
	Status          string    `json:"status"` // draft, ready, published
	Channel         string    `json:"channel,omitempty"`
	SourceDocIDs    []string  `json:"source_doc_ids,omitempty"`
	Instructions    string    `json:"instructions,omitempty"`
	TargetWordCount int       `json:"target_word_count,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ValidProductType(t string) bool {
	switch t {
	case ProductTypeXPost, ProductTypeLinkedInPost, ProductTypeInstagramPost,
		ProductTypePressRelease, ProductTypeBlogPost, ProductTypeWebsiteCopy, ProductTypeInvestorDoc:
		return true
	}
	return false
}

func ValidProductStatus(s string) bool {
	switch s {
	case ProductStatusDraft, ProductStatusReady, ProductStatusPublished:
		return true
	}
	return false
}
