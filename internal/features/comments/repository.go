package comments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xyz-asif/voiceup/internal/features/reports"
	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository struct {
	collection *mongo.Collection
	log        *logger.Logger
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection(reports.CollectionComments)

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			// Thread of a report, oldest first
			Keys: bson.D{
				{Key: "reportId", Value: 1},
				{Key: "createdAt", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
	})

	return &Repository{
		collection: collection,
		log:        logger.Default().With("comments"),
	}
}

type commentDocument struct {
	ID        string     `bson:"_id"`
	ReportID  *string    `bson:"reportId"`
	UserID    *string    `bson:"userId"`
	Text      *string    `bson:"text"`
	ParentID  *string    `bson:"parentId"`
	Edited    bool       `bson:"edited"`
	CreatedAt *time.Time `bson:"createdAt"`
}

func (d *commentDocument) toComment() (*Comment, error) {
	if d.ReportID == nil || d.UserID == nil || d.Text == nil || d.CreatedAt == nil {
		return nil, fmt.Errorf("%w: comment %s is missing required fields", pkgerrors.ErrMalformedDocument, d.ID)
	}
	c := &Comment{
		ID:        d.ID,
		ReportID:  *d.ReportID,
		UserID:    *d.UserID,
		Text:      *d.Text,
		Edited:    d.Edited,
		CreatedAt: *d.CreatedAt,
	}
	if d.ParentID != nil && *d.ParentID != "" {
		parent := *d.ParentID
		c.ParentID = &parent
	}
	return c, nil
}

// CreateComment inserts a new comment and assigns its id
func (r *Repository) CreateComment(ctx context.Context, comment *Comment) error {
	comment.ID = primitive.NewObjectID().Hex()
	comment.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

// GetCommentByID finds a comment by its id
func (r *Repository) GetCommentByID(ctx context.Context, id string) (*Comment, error) {
	res := r.collection.FindOne(ctx, bson.M{"_id": id})
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, pkgerrors.ErrNotFound
		}
		return nil, err
	}

	var doc commentDocument
	if err := res.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: comment %s: %v", pkgerrors.ErrMalformedDocument, id, err)
	}
	return doc.toComment()
}

// UpdateText replaces the text of a comment and marks it edited
func (r *Repository) UpdateText(ctx context.Context, id, text string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"text": text, "edited": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}

// DeleteComment removes a comment. Its replies stay stored but drop out of
// the rendered thread.
func (r *Repository) DeleteComment(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}

// ListByReport returns every comment of a report, oldest first. Malformed
// documents are logged and skipped.
func (r *Repository) ListByReport(ctx context.Context, reportID string) ([]Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"reportId": reportID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []Comment{}
	for cursor.Next(ctx) {
		var doc commentDocument
		if err := cursor.Decode(&doc); err != nil {
			r.log.Warn("skipping undecodable comment: %v", err)
			continue
		}
		c, err := doc.toComment()
		if err != nil {
			r.log.Warn("skipping comment: %v", err)
			continue
		}
		out = append(out, *c)
	}
	return out, cursor.Err()
}

// CountByReports counts the visible comments of each report in one query.
// Replies left behind by a deleted parent are not counted.
func (r *Repository) CountByReports(ctx context.Context, reportIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(reportIDs))
	if len(reportIDs) == 0 {
		return counts, nil
	}

	opts := options.Find().SetProjection(bson.M{"_id": 1, "reportId": 1, "parentId": 1, "createdAt": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"reportId": bson.M{"$in": reportIDs}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []Comment
	for cursor.Next(ctx) {
		var c Comment
		if err := cursor.Decode(&c); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	for id, n := range CountVisible(items) {
		counts[id] = n
	}
	return counts, nil
}
