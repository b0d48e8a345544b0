package domain

// NewsVO is a news article as managed from the admin console.
type NewsVO struct {
	ID          FlexInt `json:"id,omitempty"`
	Title       string  `json:"title,omitempty"`
	Summary     string  `json:"summary,omitempty"`
	CoverImage  string  `json:"coverImage,omitempty"`
	Content     string  `json:"content,omitempty"`
	Status      FlexInt `json:"status,omitempty"`
	IsTop       FlexInt `json:"isTop,omitempty"`
	ViewCount   FlexInt `json:"viewCount,omitempty"`
	PublishedAt string  `json:"publishedAt,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
	CreatedBy   FlexInt `json:"createdBy,omitempty"`
	UpdatedBy   FlexInt `json:"updatedBy,omitempty"`
}

// NewsQuery filters the admin news listing.
type NewsQuery struct {
	Keyword        string `json:"keyword,omitempty" query:"keyword" url:"keyword,omitempty"`
	Status         *int   `json:"status,omitempty" query:"status" url:"status,omitempty"`
	IsTop          *int   `json:"isTop,omitempty" query:"isTop" url:"isTop,omitempty"`
	PublishedStart string `json:"publishedStart,omitempty" query:"publishedStart" url:"publishedStart,omitempty"`
	PublishedEnd   string `json:"publishedEnd,omitempty" query:"publishedEnd" url:"publishedEnd,omitempty"`
	PageQuery
}

// NewsCreateRequest creates an article.
type NewsCreateRequest struct {
	Title       string `json:"title"`
	Summary     string `json:"summary,omitempty"`
	CoverImage  string `json:"coverImage,omitempty"`
	Content     string `json:"content"`
	Status      *int   `json:"status,omitempty"`
	IsTop       *int   `json:"isTop,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// NewsUpdateRequest patches an article.
type NewsUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Summary     *string `json:"summary,omitempty"`
	CoverImage  *string `json:"coverImage,omitempty"`
	Content     *string `json:"content,omitempty"`
	Status      *int    `json:"status,omitempty"`
	IsTop       *int    `json:"isTop,omitempty"`
	PublishedAt *string `json:"publishedAt,omitempty"`
}

// NewsBatchDeleteRequest removes several articles at once.
type NewsBatchDeleteRequest struct {
	NewsIDs []int64 `json:"newsIds"`
}

// PortalNewsItem is a published article on the portal.
type PortalNewsItem struct {
	ID          FlexInt `json:"id,omitempty"`
	Title       string  `json:"title,omitempty"`
	Summary     string  `json:"summary,omitempty"`
	CoverImage  string  `json:"coverImage,omitempty"`
	Content     string  `json:"content,omitempty"`
	PublishedAt string  `json:"publishedAt,omitempty"`
	IsTop       FlexInt `json:"isTop,omitempty"`
	ViewCount   FlexInt `json:"viewCount,omitempty"`
}

// PortalNewsQuery filters portal news.
type PortalNewsQuery struct {
	Keyword  string `json:"keyword,omitempty" query:"keyword" url:"keyword,omitempty"`
	Current  int    `json:"current,omitempty" query:"current" url:"current,omitempty"`
	PageSize int    `json:"pageSize,omitempty" query:"pageSize" url:"pageSize,omitempty"`
	Status   *int   `json:"status,omitempty" query:"status" url:"status,omitempty"`
	IsTop    *int   `json:"isTop,omitempty" query:"isTop" url:"isTop,omitempty"`
}
