package service

import "github.com/octolab/storefront/internal/finder/domain"

var questions = []domain.Question{
	{
		ID:       1,
		Question: "What is the primary focus of your research?",
		Options: []domain.Option{
			{Value: "recovery", Label: "Tissue Regeneration & Recovery"},
			{Value: "anti-aging", Label: "Anti-Aging & Cosmetic"},
			{Value: "performance", Label: "Physical Performance & Metabolism"},
			{Value: "cognitive", Label: "Cognitive Function"},
		},
	},
	{
		ID:       2,
		Question: "Which biological mechanism are you investigating?",
		Options: []domain.Option{
			{Value: "inflammation", Label: "Inflammation Reduction"},
			{Value: "collagen", Label: "Collagen Synthesis"},
			{Value: "gh", Label: "Growth Hormone Secretion"},
			{Value: "mitochondria", Label: "Mitochondrial Health"},
		},
	},
	{
		ID:       3,
		Question: "What is your preferred research format?",
		Options: []domain.Option{
			{Value: "vial", Label: "Lyophilized Vial (Reconstitution Required)"},
			{Value: "topical", Label: "Topical Solution"},
			{Value: "capsule", Label: "Oral Capsule"},
		},
	},
}

// matchers maps an answer value to the product categories and tags it favors.
var matchers = map[string]struct {
	categories []string
	tags       []string
}{
	"recovery":     {categories: []string{"Recovery"}},
	"anti-aging":   {categories: []string{"Cosmetic"}, tags: []string{"Anti-Aging"}},
	"performance":  {categories: []string{"Performance"}},
	"cognitive":    {tags: []string{"Cognitive"}},
	"inflammation": {tags: []string{"Inflammation"}},
	"collagen":     {tags: []string{"Skin"}},
	"gh":           {tags: []string{"Growth"}},
	"mitochondria": {tags: []string{"Metabolism"}},
	"vial":         {},
	"topical":      {tags: []string{"Skin"}},
	"capsule":      {},
}
