package domain

import (
	"context"
	"errors"

	catalogdomain "github.com/octolab/storefront/internal/catalog/domain"
)

// Question is one step of the research-focus finder quiz.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type RecommendRequest struct {
	// Answers maps question ID to the chosen option value.
	Answers map[int]string `json:"answers"`
}

type Recommendation struct {
	Product catalogdomain.Response `json:"product"`
	Score   int                    `json:"score"`
}

type Service interface {
	Questions() []Question
	Recommend(ctx context.Context, req RecommendRequest) ([]Recommendation, error)
}

var (
	ErrNoAnswers       = errors.New("no_answers")
	ErrUnknownQuestion = errors.New("unknown_question")
	ErrUnknownOption   = errors.New("unknown_option")
)
