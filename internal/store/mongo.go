package store

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/amurpo/userhub/internal/models"
)

// Connect dials MongoDB and verifies the connection with a ping. TLS
// certificate verification follows the platform defaults; insecureTLS disables
// it and must only be set as an explicit, deliberate opt-in.
func Connect(ctx context.Context, uri string, insecureTLS bool) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(uri)
	if insecureTLS {
		opts = opts.SetTLSConfig(&tls.Config{InsecureSkipVerify: true})
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// MongoStore handles user CRUD in MongoDB.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("users")}
}

// userDoc is the BSON shape of a user; the hex ObjectID is exposed to callers
// as models.User.ID.
type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *userDoc) toModel() *models.User {
	return &models.User{
		ID:        d.ID.Hex(),
		Username:  d.Username,
		Email:     d.Email,
		Password:  d.Password,
		CreatedAt: d.CreatedAt,
	}
}

// EnsureIndexes creates unique indexes on username and email so uniqueness is
// enforced by the store rather than only by the pre-insert lookup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("mongo create indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cur.Close(ctx)

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(docs))
	for i := range docs {
		users = append(users, *docs[i].toModel())
	}
	return users, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids address nothing.
		return nil, ErrNotFound
	}
	var doc userDoc
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc.toModel(), nil
}

// FindByUsernameOrEmail returns the first user matching either value. Used for
// duplicate detection before insert.
func (s *MongoStore) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}
	var doc userDoc
	if err := s.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc.toModel(), nil
}

func (s *MongoStore) Insert(ctx context.Context, username, email, passwordHash string) (string, error) {
	doc := userDoc{
		Username:  username,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
	res, err := s.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicate
		}
		return "", fmt.Errorf("mongo insert: %w", err)
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// UpdateProfile overwrites the supplied profile fields on the matching user.
// A malformed or unknown id matches nothing and is not an error.
func (s *MongoStore) UpdateProfile(ctx context.Context, id string, p ProfileUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	set := bson.M{}
	if p.Username != "" {
		set["username"] = p.Username
	}
	if p.Email != "" {
		set["email"] = p.Email
	}
	if len(set) == 0 {
		return nil
	}
	_, err = s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

// UpdatePassword overwrites only the password hash; same no-op-if-missing
// behavior as UpdateProfile.
func (s *MongoStore) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"password": passwordHash}})
	return err
}
