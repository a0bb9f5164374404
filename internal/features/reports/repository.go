package reports

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	"github.com/xyz-asif/voiceup/internal/pkg/pagination"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names shared with the votes and comments features
const (
	CollectionReports  = "reports"
	CollectionComments = "comments"
	CollectionVotes    = "votes"
)

// Repository handles database interactions for reports
type Repository struct {
	collection *mongo.Collection
	comments   *mongo.Collection
	votes      *mongo.Collection
	log        *logger.Logger
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection(CollectionReports)

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			// Feed: approved reports newest first
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
		{
			// My reports
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
		{
			Keys:    bson.D{{Key: "userUpdates.id", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	})

	return &Repository{
		collection: collection,
		comments:   db.Collection(CollectionComments),
		votes:      db.Collection(CollectionVotes),
		log:        logger.Default().With("reports"),
	}
}

// Create inserts a new report and assigns its id and timestamps
func (r *Repository) Create(ctx context.Context, report *Report) error {
	now := time.Now()
	report.ID = primitive.NewObjectID().Hex()
	report.CreatedAt = now
	report.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, report)
	return err
}

// GetByID finds a report by its id
func (r *Repository) GetByID(ctx context.Context, id string) (*Report, error) {
	res := r.collection.FindOne(ctx, bson.M{"_id": id})
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, pkgerrors.ErrNotFound
		}
		return nil, err
	}

	var doc reportDocument
	if err := res.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: report %s: %v", pkgerrors.ErrMalformedDocument, id, err)
	}
	return doc.toReport()
}

// ListApproved returns every approved report, newest first
func (r *Repository) ListApproved(ctx context.Context) ([]Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{"status": StatusApproved}, opts)
}

// ListByUser returns a user's reports, optionally filtered by status
func (r *Repository) ListByUser(ctx context.Context, userID, status string, page, limit int) ([]Report, int64, error) {
	filter := bson.M{"userId": userID}
	if status != "" {
		filter["status"] = status
	}
	return r.page(ctx, filter, page, limit)
}

// List returns all reports for moderation, optionally filtered by status
func (r *Repository) List(ctx context.Context, status string, page, limit int) ([]Report, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.page(ctx, filter, page, limit)
}

// Update applies a $set of the given fields and bumps updatedAt. Keys may be
// dotted paths such as "location.address".
func (r *Repository) Update(ctx context.Context, id string, fields bson.M) error {
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}

// Delete removes a report together with its comments and votes
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return pkgerrors.ErrNotFound
	}

	if _, err := r.comments.DeleteMany(ctx, bson.M{"reportId": id}); err != nil {
		r.log.Warn("delete comments of report %s: %v", id, err)
	}
	if _, err := r.votes.DeleteMany(ctx, bson.M{"reportId": id}); err != nil {
		r.log.Warn("delete votes of report %s: %v", id, err)
	}
	return nil
}

// AppendUpdate pushes a reporter update onto the report
func (r *Repository) AppendUpdate(ctx context.Context, id string, update UserUpdate) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"userUpdates": update},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}

// SetUpdateStatus moderates a single reporter update
func (r *Repository) SetUpdateStatus(ctx context.Context, id, updateID, status string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "userUpdates.id": updateID},
		bson.M{"$set": bson.M{"userUpdates.$.status": status}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}

// RemoveImage deletes the inline image at index in one atomic update
func (r *Repository) RemoveImage(ctx context.Context, id string, index int) error {
	if index < 0 {
		return pkgerrors.ErrNotFound
	}

	filter := bson.M{
		"_id":                                   id,
		fmt.Sprintf("evidenceBase64.%d", index): bson.M{"$exists": true},
	}
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"evidenceBase64": bson.M{"$concatArrays": bson.A{
				bson.M{"$slice": bson.A{"$evidenceBase64", index}},
				bson.M{"$slice": bson.A{"$evidenceBase64", index + 1, bson.M{"$size": "$evidenceBase64"}}},
			}},
			"updatedAt": "$$NOW",
		}}},
	}

	result, err := r.collection.UpdateOne(ctx, filter, pipeline)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}

func (r *Repository) page(ctx context.Context, filter bson.M, page, limit int) ([]Report, int64, error) {
	req := pagination.FromRequest(strconv.Itoa(page), strconv.Itoa(limit))
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(req.Skip()).
		SetLimit(int64(req.Limit))

	items, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// find decodes documents one by one so a single malformed document is
// skipped and logged instead of failing the whole query
func (r *Repository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Report, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []Report{}
	for cursor.Next(ctx) {
		var doc reportDocument
		if err := cursor.Decode(&doc); err != nil {
			r.log.Warn("skipping undecodable report: %v", err)
			continue
		}
		report, err := doc.toReport()
		if err != nil {
			r.log.Warn("skipping report: %v", err)
			continue
		}
		out = append(out, *report)
	}
	return out, cursor.Err()
}
