package domain

// CommunityPostVO is a forum post.
type CommunityPostVO struct {
	ID           int64    `json:"id,omitempty"`
	UserID       int64    `json:"userId,omitempty"`
	UserName     string   `json:"userName,omitempty"`
	Title        string   `json:"title,omitempty"`
	Content      string   `json:"content,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	LikeCount    FlexInt  `json:"likeCount,omitempty"`
	CommentCount FlexInt  `json:"commentCount,omitempty"`
	ViewCount    FlexInt  `json:"viewCount,omitempty"`
	Status       int      `json:"status,omitempty"`
	CreatedAt    string   `json:"createdAt,omitempty"`
	UpdatedAt    string   `json:"updatedAt,omitempty"`
}

// CommunityQuestionVO is a Q&A question.
type CommunityQuestionVO struct {
	ID          int64   `json:"id,omitempty"`
	UserID      int64   `json:"userId,omitempty"`
	UserName    string  `json:"userName,omitempty"`
	Title       string  `json:"title,omitempty"`
	Content     string  `json:"content,omitempty"`
	AnswerCount FlexInt `json:"answerCount,omitempty"`
	ViewCount   FlexInt `json:"viewCount,omitempty"`
	Solved      bool    `json:"solved,omitempty"`
	Status      int     `json:"status,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// CommunityAnswerVO is an answer to a question.
type CommunityAnswerVO struct {
	ID         int64   `json:"id,omitempty"`
	QuestionID int64   `json:"questionId,omitempty"`
	UserID     int64   `json:"userId,omitempty"`
	UserName   string  `json:"userName,omitempty"`
	Content    string  `json:"content,omitempty"`
	LikeCount  FlexInt `json:"likeCount,omitempty"`
	Accepted   bool    `json:"accepted,omitempty"`
	CreatedAt  string  `json:"createdAt,omitempty"`
}

// CommunityQuery filters posts and questions.
type CommunityQuery struct {
	Keyword string `json:"keyword,omitempty" query:"keyword" url:"keyword,omitempty"`
	UserID  *int64 `json:"userId,omitempty" query:"userId" url:"userId,omitempty"`
	Status  *int   `json:"status,omitempty" query:"status" url:"status,omitempty"`
	PageQuery
}

// CommunityPostCreateRequest publishes a post.
type CommunityPostCreateRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

// CommunityQuestionCreateRequest asks a question.
type CommunityQuestionCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CommunityAnswerCreateRequest answers a question.
type CommunityAnswerCreateRequest struct {
	Content string `json:"content"`
}
