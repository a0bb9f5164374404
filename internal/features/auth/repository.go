package auth

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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles database interactions for user profiles
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("users")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	})

	return &Repository{collection: collection}
}

// GetUserByID finds a user by Firebase UID
func (r *Repository) GetUserByID(ctx context.Context, uid string) (*User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": uid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, pkgerrors.ErrNotFound
		}
		return nil, err
	}
	return doc.toUser()
}

// EnsureUser creates the profile on first sign-in and returns the stored one.
// Existing role and disabled flags are never overwritten.
func (r *Repository) EnsureUser(ctx context.Context, uid, email string) (*User, error) {
	filter := bson.M{"_id": uid}
	update := bson.M{
		"$set": bson.M{"email": email},
		"$setOnInsert": bson.M{
			"role":      RoleUser,
			"disabled":  false,
			"createdAt": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc userDocument
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, fmt.Errorf("ensure user %s: %w", uid, err)
	}
	return doc.toUser()
}

// ListUsers returns profiles newest first. Malformed documents are skipped.
func (r *Repository) ListUsers(ctx context.Context, page, limit int) ([]User, int64, error) {
	req := pagination.FromRequest(strconv.Itoa(page), strconv.Itoa(limit))
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(req.Skip()).
		SetLimit(int64(req.Limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []userDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	users := make([]User, 0, len(docs))
	for i := range docs {
		u, err := docs[i].toUser()
		if err != nil {
			logger.Warn("skipping user: %v", err)
			continue
		}
		users = append(users, *u)
	}

	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// SetDisabled updates the disabled flag of a user
func (r *Repository) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$set": bson.M{"disabled": disabled}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}

// EndSessions invalidates every API token issued to the user so far
func (r *Repository) EndSessions(ctx context.Context, uid string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$inc": bson.M{"session": 1}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}

// DeleteUser removes a profile
func (r *Repository) DeleteUser(ctx context.Context, uid string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": uid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}

// SetRole changes the role of an existing profile
func (r *Repository) SetRole(ctx context.Context, uid, role string) error {
	if role != RoleUser && role != RoleAdmin {
		return fmt.Errorf("%w: unknown role %q", pkgerrors.ErrValidation, role)
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}
