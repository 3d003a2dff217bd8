package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/findly-app/lostfound-api/internal/core/domain"
	"github.com/findly-app/lostfound-api/internal/core/ports"
)

const collectionUsers = "users"

// UserRepository implements ports.UserRepository on a MongoDB collection.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(collectionUsers)}
}

// mongoUser is the persisted document shape. The password hash lives in its
// own field so default projections can strip it.
type mongoUser struct {
	ID                      primitive.ObjectID              `bson:"_id,omitempty"`
	Name                    string                          `bson:"name"`
	Email                   string                          `bson:"email"`
	PasswordHash            string                          `bson:"password_hash,omitempty"`
	ProfilePicture          string                          `bson:"profile_picture,omitempty"`
	PhoneNumber             string                          `bson:"phone_number,omitempty"`
	TrustScore              int                             `bson:"trust_score"`
	NotificationPreferences *domain.NotificationPreferences `bson:"notification_preferences,omitempty"`
	CreatedAt               time.Time                       `bson:"created_at"`
	UpdatedAt               time.Time                       `bson:"updated_at"`
}

// withoutPassword is the default projection for reads.
var withoutPassword = options.FindOne().SetProjection(bson.M{"password_hash": 0})

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:                      mu.ID.Hex(),
		Name:                    mu.Name,
		Email:                   mu.Email,
		PasswordHash:            mu.PasswordHash,
		ProfilePicture:          mu.ProfilePicture,
		PhoneNumber:             mu.PhoneNumber,
		TrustScore:              mu.TrustScore,
		NotificationPreferences: mu.NotificationPreferences,
		CreatedAt:               mu.CreatedAt.UTC(),
		UpdatedAt:               mu.UpdatedAt.UTC(),
	}
}

// Create inserts a new user document. Returns domain.ErrDuplicateUser when
// the unique email index rejects the write.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		Name:                    user.Name,
		Email:                   user.Email,
		PasswordHash:            user.PasswordHash,
		ProfilePicture:          user.ProfilePicture,
		PhoneNumber:             user.PhoneNumber,
		TrustScore:              user.TrustScore,
		NotificationPreferences: user.NotificationPreferences,
		CreatedAt:               user.CreatedAt,
		UpdatedAt:               user.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateUser
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, byID(id), withoutPassword)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, withoutPassword)
}

// FindByEmailWithPassword includes the password hash; used only for login.
func (r *UserRepository) FindByEmailWithPassword(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, nil)
}

// FindByIDWithPassword includes the password hash; used only for password changes.
func (r *UserRepository) FindByIDWithPassword(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, byID(id), nil)
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	var err error
	if opts != nil {
		err = r.coll.FindOne(ctx, filter, opts).Decode(&mu)
	} else {
		err = r.coll.FindOne(ctx, filter).Decode(&mu)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

// UpdateProfile applies only the non-nil fields plus updated_at, then reads
// back the updated projection.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, update ports.ProfileUpdate, updatedAt time.Time) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": updatedAt}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.PhoneNumber != nil {
		set["phone_number"] = *update.PhoneNumber
	}
	if update.ProfilePicture != nil {
		set["profile_picture"] = *update.ProfilePicture
	}
	if update.NotificationPreferences != nil {
		set["notification_preferences"] = update.NotificationPreferences
	}

	res, err := r.coll.UpdateOne(ctx, byID(id), bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateUser
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string, updatedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, byID(id), bson.M{
		"$set": bson.M{"password_hash": passwordHash, "updated_at": updatedAt},
	})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index that backs the duplicate-user
// guarantee.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// byID builds an _id filter, tolerating both hex ObjectIDs and opaque IDs
// written by tests.
func byID(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}
