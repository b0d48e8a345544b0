package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spec-kit/rental-console/internal/apiclient"
	"github.com/spec-kit/rental-console/internal/domain"
)

// CommunityGateway covers the forum: posts, questions and their answers.
type CommunityGateway interface {
	PagePosts(ctx context.Context, q domain.CommunityQuery) (*domain.PageResult[domain.CommunityPostVO], error)
	GetPost(ctx context.Context, id int64) (*domain.CommunityPostVO, error)
	CreatePost(ctx context.Context, req domain.CommunityPostCreateRequest) (*domain.CommunityPostVO, error)
	DeletePost(ctx context.Context, id int64) error

	PageQuestions(ctx context.Context, q domain.CommunityQuery) (*domain.PageResult[domain.CommunityQuestionVO], error)
	GetQuestion(ctx context.Context, id int64) (*domain.CommunityQuestionVO, error)
	CreateQuestion(ctx context.Context, req domain.CommunityQuestionCreateRequest) (*domain.CommunityQuestionVO, error)
	DeleteQuestion(ctx context.Context, id int64) error

	ListAnswers(ctx context.Context, questionID int64) ([]domain.CommunityAnswerVO, error)
	CreateAnswer(ctx context.Context, questionID int64, req domain.CommunityAnswerCreateRequest) (*domain.CommunityAnswerVO, error)
	DeleteAnswer(ctx context.Context, id int64) error
}

type communityGateway struct {
	r         apiclient.Requester
	posts     resource[domain.CommunityPostVO, domain.CommunityQuery, domain.CommunityPostCreateRequest, struct{}]
	questions resource[domain.CommunityQuestionVO, domain.CommunityQuery, domain.CommunityQuestionCreateRequest, struct{}]
}

// NewCommunityGateway builds the gateway.
func NewCommunityGateway(r apiclient.Requester) CommunityGateway {
	return &communityGateway{
		r:         r,
		posts:     newResource[domain.CommunityPostVO, domain.CommunityQuery, domain.CommunityPostCreateRequest, struct{}](r, "/community/posts"),
		questions: newResource[domain.CommunityQuestionVO, domain.CommunityQuery, domain.CommunityQuestionCreateRequest, struct{}](r, "/community/questions"),
	}
}

func (g *communityGateway) PagePosts(ctx context.Context, q domain.CommunityQuery) (*domain.PageResult[domain.CommunityPostVO], error) {
	return g.posts.page(ctx, q)
}

func (g *communityGateway) GetPost(ctx context.Context, id int64) (*domain.CommunityPostVO, error) {
	return g.posts.get(ctx, id)
}

func (g *communityGateway) CreatePost(ctx context.Context, req domain.CommunityPostCreateRequest) (*domain.CommunityPostVO, error) {
	return g.posts.create(ctx, req)
}

func (g *communityGateway) DeletePost(ctx context.Context, id int64) error {
	return g.posts.delete(ctx, id)
}

func (g *communityGateway) PageQuestions(ctx context.Context, q domain.CommunityQuery) (*domain.PageResult[domain.CommunityQuestionVO], error) {
	return g.questions.page(ctx, q)
}

func (g *communityGateway) GetQuestion(ctx context.Context, id int64) (*domain.CommunityQuestionVO, error) {
	return g.questions.get(ctx, id)
}

func (g *communityGateway) CreateQuestion(ctx context.Context, req domain.CommunityQuestionCreateRequest) (*domain.CommunityQuestionVO, error) {
	return g.questions.create(ctx, req)
}

func (g *communityGateway) DeleteQuestion(ctx context.Context, id int64) error {
	return g.questions.delete(ctx, id)
}

func (g *communityGateway) ListAnswers(ctx context.Context, questionID int64) ([]domain.CommunityAnswerVO, error) {
	return apiclient.Do[[]domain.CommunityAnswerVO](ctx, g.r, apiclient.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/community/questions/%d/answers", questionID),
	})
}

func (g *communityGateway) CreateAnswer(ctx context.Context, questionID int64, req domain.CommunityAnswerCreateRequest) (*domain.CommunityAnswerVO, error) {
	return apiclient.Do[*domain.CommunityAnswerVO](ctx, g.r, apiclient.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/community/questions/%d/answers", questionID),
		Body:   req,
	})
}

func (g *communityGateway) DeleteAnswer(ctx context.Context, id int64) error {
	return apiclient.Exec(ctx, g.r, apiclient.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/community/answers/%d", id),
	})
}
