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

	"github.com/courseify/course-api/internal/core/domain"
)

const (
	adminCollection = "admins"
	userCollection  = "users"
)

// AccountRepository persists accounts in role-specific collections, mirroring
// the historical admins/users split.
type AccountRepository struct {
	db *mongo.Database
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{db: db}
}

type mongoAccount struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Username         string             `bson:"username"`
	PasswordHash     string             `bson:"password_hash"`
	PurchasedCourses []string           `bson:"purchasedCourses,omitempty"`
	CreatedAt        int64              `bson:"created_at"`
}

func (r *AccountRepository) collection(role string) *mongo.Collection {
	if role == domain.RoleAdmin {
		return r.db.Collection(adminCollection)
	}
	return r.db.Collection(userCollection)
}

// Create inserts the account. The unique username index turns a concurrent
// duplicate signup into domain.ErrAccountExists instead of a second document.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAccount{
		Username:     account.Username,
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt.Unix(),
	}

	res, err := r.collection(account.Role).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *account
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, role, username string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAccount
	if err := r.collection(role).FindOne(ctx, bson.M{"username": username}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	return &domain.Account{
		ID:               ma.ID.Hex(),
		Username:         ma.Username,
		PasswordHash:     ma.PasswordHash,
		Role:             role,
		PurchasedCourses: ma.PurchasedCourses,
		CreatedAt:        unixToTime(ma.CreatedAt),
	}, nil
}

// AddPurchase adds courseID to the user's purchase set with $addToSet, so a
// repeated purchase of the same course is a no-op.
func (r *AccountRepository) AddPurchase(ctx context.Context, username, courseID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.Collection(userCollection).UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$addToSet": bson.M{"purchasedCourses": courseID}},
	)
	if err != nil {
		return fmt.Errorf("record purchase: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// EnsureIndexes creates the unique username index on both account collections.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	for _, name := range []string{adminCollection, userCollection} {
		if _, err := r.db.Collection(name).Indexes().CreateOne(ctx, index); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}
	return nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
