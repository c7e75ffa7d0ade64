package service

import (
	"context"
	"testing"

	catalogdomain "github.com/octolab/storefront/internal/catalog/domain"
	"github.com/octolab/storefront/internal/finder/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type catalogStub struct {
	products []catalogdomain.Response
	err      error
}

func (c *catalogStub) List(ctx context.Context) ([]catalogdomain.Response, error) {
	return c.products, c.err
}

func (c *catalogStub) GetBySlug(ctx context.Context, slug string) (*catalogdomain.Response, error) {
	return nil, catalogdomain.ErrNotFound
}

func (c *catalogStub) GetByID(ctx context.Context, id string) (*catalogdomain.Response, error) {
	return nil, catalogdomain.ErrNotFound
}

func (c *catalogStub) Categories(ctx context.Context) ([]string, error) {
	return nil, c.err
}

func finderWithCatalog(products []catalogdomain.Response) domain.Service {
	return New(Params{
		Log:     zap.NewNop(),
		Catalog: &catalogStub{products: products},
	})
}

func researchCatalog() []catalogdomain.Response {
	return []catalogdomain.Response{
		{ID: "1", Slug: "bpc-157", Name: "BPC-157", Category: "Recovery", Tags: []string{"Recovery", "Gut Health", "Joints"}},
		{ID: "2", Slug: "tb-500", Name: "TB-500", Category: "Recovery", Tags: []string{"Mobility", "Inflammation", "Repair"}},
		{ID: "3", Slug: "ghk-cu", Name: "GHK-Cu", Category: "Cosmetic", Tags: []string{"Skin", "Hair", "Anti-Aging"}},
		{ID: "4", Slug: "cjc-1295", Name: "CJC-1295", Category: "Performance", Tags: []string{"Performance", "Growth", "Metabolism"}},
	}
}

func TestQuestionsAreStable(t *testing.T) {
	svc := finderWithCatalog(nil)

	questions := svc.Questions()
	require.Len(t, questions, 3)
	assert.Equal(t, 1, questions[0].ID)
	assert.Len(t, questions[0].Options, 4)
	assert.Equal(t, "recovery", questions[0].Options[0].Value)
}

func TestRecommendRanksBestMatchFirst(t *testing.T) {
	svc := finderWithCatalog(researchCatalog())

	recs, err := svc.Recommend(context.Background(), domain.RecommendRequest{
		Answers: map[int]string{1: "recovery", 2: "inflammation"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	// TB-500 matches both the Recovery category and the Inflammation tag.
	assert.Equal(t, "tb-500", recs[0].Product.Slug)
	assert.Equal(t, 2, recs[0].Score)
	for i := 1; i < len(recs); i++ {
		assert.LessOrEqual(t, recs[i].Score, recs[i-1].Score)
	}
}

func TestRecommendOmitsNonMatches(t *testing.T) {
	svc := finderWithCatalog(researchCatalog())

	recs, err := svc.Recommend(context.Background(), domain.RecommendRequest{
		Answers: map[int]string{1: "anti-aging"},
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "ghk-cu", recs[0].Product.Slug)
}

func TestRecommendTiesKeepCatalogOrder(t *testing.T) {
	svc := finderWithCatalog(researchCatalog())

	recs, err := svc.Recommend(context.Background(), domain.RecommendRequest{
		Answers: map[int]string{1: "recovery"},
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "bpc-157", recs[0].Product.Slug)
	assert.Equal(t, "tb-500", recs[1].Product.Slug)
}

func TestRecommendNormalizesAnswerValues(t *testing.T) {
	svc := finderWithCatalog(researchCatalog())

	recs, err := svc.Recommend(context.Background(), domain.RecommendRequest{
		Answers: map[int]string{1: "  Recovery "},
	})
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestRecommendRejectsEmptyAnswers(t *testing.T) {
	svc := finderWithCatalog(researchCatalog())

	_, err := svc.Recommend(context.Background(), domain.RecommendRequest{})
	assert.ErrorIs(t, err, domain.ErrNoAnswers)
}

func TestRecommendRejectsUnknownQuestion(t *testing.T) {
	svc := finderWithCatalog(researchCatalog())

	_, err := svc.Recommend(context.Background(), domain.RecommendRequest{
		Answers: map[int]string{9: "recovery"},
	})
	assert.ErrorIs(t, err, domain.ErrUnknownQuestion)
}

func TestRecommendRejectsUnknownOption(t *testing.T) {
	svc := finderWithCatalog(researchCatalog())

	_, err := svc.Recommend(context.Background(), domain.RecommendRequest{
		Answers: map[int]string{1: "weight-loss"},
	})
	assert.ErrorIs(t, err, domain.ErrUnknownOption)
}
