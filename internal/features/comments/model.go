package comments

import (
	"time"
)

// MaxTextLength caps a single comment
const MaxTextLength = 1000

// MaxIndent is the deepest visual nesting a thread renders. Deeper replies
// keep their true depth but are drawn at this indent.
const MaxIndent = 1

// Comment is one message in a report's discussion. Authors are not exposed.
type Comment struct {
	ID        string    `bson:"_id" json:"id"`
	ReportID  string    `bson:"reportId" json:"reportId"`
	UserID    string    `bson:"userId" json:"-"`
	Text      string    `bson:"text" json:"text"`
	ParentID  *string   `bson:"parentId" json:"parentId"`
	Edited    bool      `bson:"edited,omitempty" json:"edited"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// IsRoot reports whether the comment starts a thread
func (c *Comment) IsRoot() bool {
	return c.ParentID == nil || *c.ParentID == ""
}

// IsAuthoredBy checks if the comment was written by the given user
func (c *Comment) IsAuthoredBy(userID string) bool {
	return c.UserID == userID
}

// Entry is a comment placed in its thread
type Entry struct {
	Comment
	Depth     int  `json:"depth"`
	Indent    int  `json:"indent"`
	CanModify bool `json:"canModify"`
}

// Request DTOs

type CreateCommentRequest struct {
	Text     string  `json:"text" binding:"required"`
	ParentID *string `json:"parentId"`
}

type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// ThreadResponse for GET /reports/:id/comments
type ThreadResponse struct {
	Comments []Entry `json:"comments"`
	Total    int     `json:"total"`
}
