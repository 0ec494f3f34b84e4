// internal/service/product_service.go
package service

import (
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	appErrors "github.com/pressquest/pressquest-backend/internal/errors"
	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/repository"
)

// What happens to a published product when its content is edited.
const (
	PublishedEditRevertToDraft = "revert-to-draft"
	PublishedEditKeepStatus    = "keep-status"
)

type ProductService struct {
	ProductRepo repository.ProductRepositoryInterface
	Generator   ContentGenerator

	// PublishedEditPolicy defaults to PublishedEditRevertToDraft.
	PublishedEditPolicy string
}

type CreateProductInput struct {
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	UseAI           bool     `json:"use_ai"`
	SourceDocIDs    []string `json:"source_doc_ids"`
	Instructions    string   `json:"instructions"`
	TargetWordCount int      `json:"target_word_count"`
	Channel         string   `json:"channel"`
}

var productTypeLabels = map[string]string{
	model.ProductTypeXPost:         "X Post",
	model.ProductTypeLinkedInPost:  "LinkedIn Post",
	model.ProductTypeInstagramPost: "Instagram Post",
	model.ProductTypePressRelease:  "Press Release",
	model.ProductTypeBlogPost:      "Blog Post",
	model.ProductTypeWebsiteCopy:   "Website Copy",
	model.ProductTypeInvestorDoc:   "Investor Doc",
}

// CreateProduct creates either an empty draft or, with UseAI, one seeded with
// canned generated content. The generation inputs are recorded on the product
// for traceability.
func (s *ProductService) CreateProduct(questID string, in CreateProductInput) (*model.ProductOutput, error) {
	if !model.ValidProductType(in.Type) {
		return nil, appErrors.NewValidation("type", "unknown product type: "+in.Type)
	}

	content := ""
	if in.UseAI {
		generated, err := s.generator().Generate(in.Type, GenerateOptions{
			SourceDocIDs:    in.SourceDocIDs,
			Instructions:    in.Instructions,
			TargetWordCount: in.TargetWordCount,
		})
		if err != nil {
			return nil, err
		}
		content = generated
	}

	title := in.Title
	if title == "" {
		title = productTypeLabels[in.Type]
	}

	now := time.Now()
	p := &model.ProductOutput{
		ID:              uuid.NewString(),
		QuestID:         questID,
		Type:            in.Type,
		Title:           title,
		Content:         content,
		WordCount:       countWords(content),
		CharCount:       len(content),
		Status:          model.ProductStatusDraft,
		Channel:         in.Channel,
		SourceDocIDs:    in.SourceDocIDs,
		Instructions:    in.Instructions,
		TargetWordCount: in.TargetWordCount,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.ProductRepo.Save(questID, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ApplyEditInstruction pattern-matches the instruction against a small fixed
// set of intents and applies the corresponding deterministic transformation.
// Unmatched instructions are acknowledged without changing the content. The
// updated product is returned with derived fields recomputed, plus a summary
// of what changed.
func (s *ProductService) ApplyEditInstruction(p *model.ProductOutput, instruction string) (*model.ProductOutput, string, error) {
	if p == nil {
		return nil, "", appErrors.NewValidation("product", "must not be nil")
	}

	updated := *p
	instr := strings.ToLower(instruction)
	summary := ""
	changed := false

	switch {
	case containsAny(instr, "shorter", "shorten", "condense", "trim"):
		sentences := splitSentences(updated.Content)
		if len(sentences) > 1 {
			keep := (len(sentences)*3 + 4) / 5 // ~60%, rounded up
			updated.Content = strings.Join(sentences[:keep], " ")
			changed = true
			summary = "Condensed the draft to its strongest opening."
		} else {
			summary = "The draft is already as short as it gets."
		}

	case containsAny(instr, "longer", "expand", "more detail", "elaborate"):
		updated.Content = appendSentence(updated.Content, closingSentences[updated.Type])
		changed = true
		summary = "Expanded the draft with a closing thought."

	case containsAny(instr, "formal", "professional", "polish"):
		updated.Content = applyWordSubstitutions(updated.Content, formalSubstitutions)
		changed = updated.Content != p.Content
		summary = "Raised the tone to a more formal register."

	case containsAny(instr, "casual", "friendly", "conversational"):
		updated.Content = applyWordSubstitutions(updated.Content, casualSubstitutions)
		changed = updated.Content != p.Content
		summary = "Loosened the tone to read more conversationally."

	case containsAny(instr, "call to action", "call-to-action", "cta"):
		updated.Content = appendSentence(updated.Content, ctaSentences[updated.Type])
		changed = true
		summary = "Added a call to action."

	default:
		summary = "Applied the instruction; no content changes were needed."
	}

	if changed && p.Status == model.ProductStatusPublished && s.publishedEditPolicy() == PublishedEditRevertToDraft {
		updated.Status = model.ProductStatusDraft
		log.Println("⚠️ published product re-opened by edit:", p.ID)
	}

	updated.WordCount = countWords(updated.Content)
	updated.CharCount = len(updated.Content)
	updated.UpdatedAt = time.Now()
	return &updated, summary, nil
}

// SetStatus moves a product among draft/ready/published and persists it.
func (s *ProductService) SetStatus(questID, productID, status string) (*model.ProductOutput, error) {
	if !model.ValidProductStatus(status) {
		return nil, appErrors.NewValidation("status", "unknown status: "+status)
	}
	p, err := s.ProductRepo.Get(questID, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		log.Println("⚠️ product not found for status change:", productID)
		return nil, nil
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	if err := s.ProductRepo.Save(questID, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) SaveProduct(questID string, p *model.ProductOutput) error {
	p.WordCount = countWords(p.Content)
	p.CharCount = len(p.Content)
	p.UpdatedAt = time.Now()
	return s.ProductRepo.Save(questID, p)
}

func (s *ProductService) ListProducts(questID string) []model.ProductOutput {
	return s.ProductRepo.List(questID)
}

func (s *ProductService) GetProduct(questID, productID string) (*model.ProductOutput, error) {
	return s.ProductRepo.Get(questID, productID)
}

func (s *ProductService) generator() ContentGenerator {
	if s.Generator != nil {
		return s.Generator
	}
	return CannedGenerator{}
}

func (s *ProductService) publishedEditPolicy() string {
	if s.PublishedEditPolicy == "" {
		return PublishedEditRevertToDraft
	}
	return s.PublishedEditPolicy
}

// ====================== Text transformations ======================

var closingSentences = map[string]string{
	model.ProductTypeXPost:         "Follow along, there's a lot more coming.",
	model.ProductTypeLinkedInPost:  "We're grateful to everyone who helped us get here, and we're just getting started.",
	model.ProductTypeInstagramPost: "Stay tuned for the full reveal.",
	model.ProductTypePressRelease:  "Further details will be shared as the rollout progresses.",
	model.ProductTypeBlogPost:      "We'll share more on how this evolves in the coming weeks.",
	model.ProductTypeWebsiteCopy:   "See for yourself what the next chapter looks like.",
	model.ProductTypeInvestorDoc:   "Management believes these developments materially strengthen the company's position.",
}

var ctaSentences = map[string]string{
	model.ProductTypeXPost:         "Read the full story at the link below.",
	model.ProductTypeLinkedInPost:  "Visit our website to learn more and get in touch.",
	model.ProductTypeInstagramPost: "Tap the link in bio to learn more.",
	model.ProductTypePressRelease:  "For press inquiries, contact the media relations team.",
	model.ProductTypeBlogPost:      "Sign up today to be among the first to try it.",
	model.ProductTypeWebsiteCopy:   "Start your free trial today.",
	model.ProductTypeInvestorDoc:   "Please direct questions to the investor relations team.",
}

// Fixed whole-word substitutions applied case-insensitively.
var formalSubstitutions = [][2]string{
	{"get", "obtain"},
	{"big", "significant"},
	{"really", "notably"},
	{"think", "believe"},
	{"show", "demonstrate"},
	{"a lot of", "numerous"},
}

var casualSubstitutions = [][2]string{
	{"obtain", "get"},
	{"utilize", "use"},
	{"commence", "kick off"},
	{"additionally", "also"},
	{"regarding", "about"},
	{"therefore", "so"},
}

func applyWordSubstitutions(content string, pairs [][2]string) string {
	for _, pair := range pairs {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(pair[0]) + `\b`)
		content = re.ReplaceAllString(content, pair[1])
	}
	return content
}

func appendSentence(content, sentence string) string {
	if sentence == "" {
		sentence = "More to come."
	}
	if strings.TrimSpace(content) == "" {
		return sentence
	}
	return strings.TrimRight(content, " \n") + "\n\n" + sentence
}

var sentenceEnd = regexp.MustCompile(`([.!?])\s+`)

// splitSentences breaks content on sentence-ending punctuation, keeping the
// punctuation with each sentence.
func splitSentences(content string) []string {
	marked := sentenceEnd.ReplaceAllString(content, "$1\x00")
	parts := strings.Split(marked, "\x00")
	out := []string{}
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, strings.TrimSpace(p))
		}
	}
	return out
}

func countWords(content string) int {
	return len(strings.Fields(content))
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
