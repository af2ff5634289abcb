package dto

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageQuery describes the offset pagination accepted by list endpoints.
type PageQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// Normalize clamps the query to sane defaults.
func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
}

func (q *PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

type CreatePostDTO struct {
	Content string `form:"content" binding:"required,max=5000"`
	Type    string `form:"type" binding:"required"`
}

type UpdatePostDTO struct {
	Content string `json:"content" binding:"required,max=5000"`
}

type MediaFileDTO struct {
	ID               uint64 `json:"id"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	ContentType      string `json:"content_type"`
	Size             int64  `json:"size"`
	FilePath         string `json:"file_path"`
}

type PostDTO struct {
	ID        uint64          `json:"id"`
	Content   string          `json:"content"`
	Type      string          `json:"type"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
	User      *UserDTO        `json:"user"`
	Media     []*MediaFileDTO `json:"media"`
	LikeCount int64           `json:"like_count"`
}

type PostPageDTO struct {
	Items    []*PostDTO `json:"items"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	Total    int64      `json:"total"`
}
