package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anderson-nunes/account-service/internal/core/domain"
)

const collectionAccounts = "users"

// AccountRepository implements ports.AccountRepository using MongoDB.
type AccountRepository struct {
	col *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{col: db.Collection(collectionAccounts)}
}

// accountDocument is the stored shape; created_at is kept as a BSON date.
type accountDocument struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty"`
	ID        string             `bson:"id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"created_at"`
}

func toDocument(a *domain.Account) accountDocument {
	return accountDocument{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Password:  a.PasswordHash,
		Role:      string(a.Role),
		CreatedAt: a.CreatedAt.UTC(),
	}
}

func (d accountDocument) toDomain() *domain.Account {
	return &domain.Account{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		Role:         domain.Role(d.Role),
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

// FindMany returns accounts whose name contains q (case-insensitive), in
// insertion order. An empty q returns every account.
func (r *AccountRepository) FindMany(ctx context.Context, q string) ([]*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if q != "" {
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}}
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find accounts: %w", err)
	}
	defer cur.Close(ctx)

	var docs []accountDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}

	accounts := make([]*domain.Account, 0, len(docs))
	for _, d := range docs {
		accounts = append(accounts, d.toDomain())
	}
	return accounts, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d accountDocument
	if err := r.col.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return d.toDomain(), nil
}

// Insert stores a new account. A duplicate id or email surfaces as the
// driver's duplicate-key error.
func (r *AccountRepository) Insert(ctx context.Context, account *domain.Account) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toDocument(account)); err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *AccountRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// EnsureIndexes creates the unique indexes on id and email.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
