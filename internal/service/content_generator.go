// internal/service/content_generator.go
package service

import "github.com/pressquest/pressquest-backend/internal/model"

// GenerateOptions carries the knobs recorded on the product for traceability.
type GenerateOptions struct {
	SourceDocIDs    []string
	Instructions    string
	TargetWordCount int
}

// ContentGenerator produces the initial content for a product type. The
// canned implementation below is the only one shipped; a model-backed
// generator can be swapped in without touching ProductService.
type ContentGenerator interface {
	Generate(productType string, opts GenerateOptions) (string, error)
}

// CannedGenerator returns a fixed opening per product type. No model call is
// made anywhere in this service.
type CannedGenerator struct{}

var cannedOpenings = map[string]string{
	model.ProductTypeXPost: "Big news from the team: we're announcing something we've been building for months. " +
		"Here's why it matters and what comes next.",
	model.ProductTypeLinkedInPost: "Today marks a milestone for our company. " +
		"We're sharing an announcement that reflects months of work across the whole team, " +
		"and we want to walk you through what it means for our customers and partners.",
	model.ProductTypeInstagramPost: "Something big is happening behind the scenes. " +
		"Swipe through for the story of what we've been building and why we can't wait to share it.",
	model.ProductTypePressRelease: "FOR IMMEDIATE RELEASE. " +
		"The company today announced a major step forward in its mission, " +
		"detailing new developments that position it for the next stage of growth.",
	model.ProductTypeBlogPost: "We have news to share. " +
		"In this post we'll cover what we're announcing, the thinking behind it, " +
		"and what it unlocks for the people who use our product every day.",
	model.ProductTypeWebsiteCopy: "Built for teams who move fast. " +
		"Discover how our latest milestone changes what you can expect from us.",
	model.ProductTypeInvestorDoc: "This document summarizes the company's recent progress, " +
		"key metrics, and the strategic rationale behind today's announcement.",
}

func (CannedGenerator) Generate(productType string, opts GenerateOptions) (string, error) {
	if opening, ok := cannedOpenings[productType]; ok {
		return opening, nil
	}
	return "Draft content for your announcement. Edit this to match your story.", nil
}

var _ ContentGenerator = (*CannedGenerator)(nil)
