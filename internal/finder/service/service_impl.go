package service

import (
	"context"
	"sort"
	"strings"

	catalogdomain "github.com/octolab/storefront/internal/catalog/domain"
	"github.com/octolab/storefront/internal/finder/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log     *zap.Logger
	Catalog catalogdomain.Service
}

type Service struct {
	log     *zap.Logger
	catalog catalogdomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("finder.service"),
		catalog: p.Catalog,
	}
}

func (s *Service) Questions() []domain.Question {
	return questions
}

// Recommend scores every catalog product against the chosen answers and
// returns the products that matched at least one criterion, best match first.
// Ties keep catalog order, so the result is deterministic.
func (s *Service) Recommend(ctx context.Context, req domain.RecommendRequest) ([]domain.Recommendation, error) {
	if len(req.Answers) == 0 {
		return nil, domain.ErrNoAnswers
	}

	chosen := make([]string, 0, len(req.Answers))
	for questionID, value := range req.Answers {
		question := questionByID(questionID)
		if question == nil {
			return nil, domain.ErrUnknownQuestion
		}
		value = strings.ToLower(strings.TrimSpace(value))
		if !question.HasOption(value) {
			return nil, domain.ErrUnknownOption
		}
		chosen = append(chosen, value)
	}

	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	recs := make([]domain.Recommendation, 0, len(products))
	for i, product := range products {
		score := scoreProduct(product, chosen)
		if score == 0 {
			continue
		}
		recs = append(recs, domain.Recommendation{Product: products[i], Score: score})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	return recs, nil
}

func questionByID(id int) *questionView {
	for i := range questions {
		if questions[i].ID == id {
			return &questionView{q: &questions[i]}
		}
	}
	return nil
}

type questionView struct {
	q *domain.Question
}

func (v *questionView) HasOption(value string) bool {
	for _, opt := range v.q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

func scoreProduct(product catalogdomain.Response, chosen []string) int {
	score := 0
	for _, value := range chosen {
		matcher, ok := matchers[value]
		if !ok {
			continue
		}
		for _, category := range matcher.categories {
			if strings.EqualFold(product.Category, category) {
				score++
			}
		}
		for _, tag := range matcher.tags {
			if hasTag(product.Tags, tag) {
				score++
			}
		}
	}
	return score
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if strings.EqualFold(tag, want) {
			return true
		}
	}
	return false
}
