package projections

import (
	"context"
	"time"

	"workout/internal/adapters/storage/rating"
)

// CommentStore interface for comment queries.
type CommentStore interface {
	ListComments(ctx context.Context, limit int) ([]rating.Comment, error)
}

// DefaultCommentLimit caps the comments page.
const DefaultCommentLimit = 100

// GetCommentsQuery carries input for the comments projection.
type GetCommentsQuery struct {
	Limit int // 0 uses DefaultCommentLimit
}

// GetCommentsDeps holds dependencies for the comments projection.
type GetCommentsDeps struct {
	CommentStore CommentStore
}

// CommentRow is one rendered comment.
type CommentRow struct {
	Username  string    `json:"username"`
	Stars     int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// StarString renders the rating as filled and empty stars.
func (c CommentRow) StarString() string {
	out := make([]rune, 0, 5)
	for i := 1; i <= 5; i++ {
		if i <= c.Stars {
			out = append(out, '★')
		} else {
			out = append(out, '☆')
		}
	}
	return string(out)
}

// CommentsView lists comments newest first with their average rating.
type CommentsView struct {
	Comments      []CommentRow `json:"comments"`
	AverageRating float64      `json:"average_rating"`
}

// QueryGetComments returns the latest rating comments.
// PRE: none
// POST: AverageRating is 0 when there are no comments
func QueryGetComments(ctx context.Context, query GetCommentsQuery, deps GetCommentsDeps) (CommentsView, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultCommentLimit
	}
	comments, err := deps.CommentStore.ListComments(ctx, limit)
	if err != nil {
		return CommentsView{}, err
	}

	view := CommentsView{Comments: make([]CommentRow, 0, len(comments))}
	total := 0
	for _, c := range comments {
		view.Comments = append(view.Comments, CommentRow{
			Username:  c.Username,
			Stars:     c.Stars,
			Comment:   c.Comment,
			CreatedAt: c.CreatedAt,
		})
		total += c.Stars
	}
	if len(comments) > 0 {
		view.AverageRating = float64(total) / float64(len(comments))
	}
	return view, nil
}
