package votes

import (
	"context"
	"errors"
	"fmt"

	"github.com/xyz-asif/voiceup/internal/features/reports"
	pkgerrors "github.com/xyz-asif/voiceup/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Transactor runs fn inside a multi-document transaction
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}

// Repository handles database interactions for votes and report tallies
type Repository struct {
	collection *mongo.Collection
	reports    *mongo.Collection
	tx         Transactor
}

// NewRepository creates repository and ensures indexes
func NewRepository(db *mongo.Database, tx Transactor) *Repository {
	collection := db.Collection(reports.CollectionVotes)

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			// Cascade deletes and per-report lookups
			Keys: bson.D{{Key: "reportId", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "userId", Value: 1}},
		},
	})

	return &Repository{
		collection: collection,
		reports:    db.Collection(reports.CollectionReports),
		tx:         tx,
	}
}

// RunInTx runs fn in a transaction. Every call inside fn must use the
// context it receives.
func (r *Repository) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.tx.WithTransaction(ctx, fn)
}

type voteDocument struct {
	ID       string  `bson:"_id"`
	ReportID *string `bson:"reportId"`
	UserID   *string `bson:"userId"`
	Type     *string `bson:"type"`
}

func (d *voteDocument) toVote() (*Vote, error) {
	if d.ReportID == nil || d.UserID == nil || d.Type == nil || !IsType(*d.Type) {
		return nil, fmt.Errorf("%w: vote %s", pkgerrors.ErrMalformedDocument, d.ID)
	}
	return &Vote{ID: d.ID, ReportID: *d.ReportID, UserID: *d.UserID, Type: *d.Type}, nil
}

// Get returns the user's vote on a report, or nil when there is none
func (r *Repository) Get(ctx context.Context, reportID, userID string) (*Vote, error) {
	res := r.collection.FindOne(ctx, bson.M{"_id": ID(reportID, userID)})
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	var doc voteDocument
	if err := res.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: vote %s: %v", pkgerrors.ErrMalformedDocument, ID(reportID, userID), err)
	}
	return doc.toVote()
}

// Put writes the vote, replacing any previous one for the same pair
func (r *Repository) Put(ctx context.Context, vote *Vote) error {
	vote.ID = ID(vote.ReportID, vote.UserID)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": vote.ID}, vote, options.Replace().SetUpsert(true))
	return err
}

// Delete removes the user's vote on a report
func (r *Repository) Delete(ctx context.Context, reportID, userID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": ID(reportID, userID)})
	return err
}

// Adjust moves one tally counter by delta. Decrements never take a counter
// below zero.
func (r *Repository) Adjust(ctx context.Context, reportID, voteType string, delta int) error {
	field := "votes." + voteType
	filter := bson.M{"_id": reportID}
	if delta < 0 {
		filter[field] = bson.M{"$gte": -delta}
	}

	result, err := r.reports.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 && delta > 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}

// Tally reads the current counters of a report
func (r *Repository) Tally(ctx context.Context, reportID string) (reports.Tally, error) {
	var doc struct {
		Votes reports.Tally `bson:"votes"`
	}
	opts := options.FindOne().SetProjection(bson.M{"votes": 1})
	err := r.reports.FindOne(ctx, bson.M{"_id": reportID}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return reports.Tally{}, pkgerrors.ErrNotFound
	}
	return doc.Votes, err
}
