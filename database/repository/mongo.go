package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"zyppr/database"
	"zyppr/models"
)

const (
	usersCollection      = "users"
	businessesCollection = "businesses"
)

// MongoUserRepo is the MongoDB-backed user collection.
type MongoUserRepo struct {
	coll *mongo.Collection
}

func NewMongoUserRepo() *MongoUserRepo {
	return &MongoUserRepo{
		coll: database.MongoClient.Database(database.DatabaseName).Collection(usersCollection),
	}
}

func (r *MongoUserRepo) All(ctx context.Context) ([]models.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("MongoUserRepo: failed to fetch users: %w", err)
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("MongoUserRepo: failed to decode users: %w", err)
	}
	return users, nil
}

func (r *MongoUserRepo) ReplaceAll(ctx context.Context, users []models.User) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("MongoUserRepo: failed to clear users: %w", err)
	}
	if len(users) == 0 {
		return nil
	}
	docs := make([]interface{}, len(users))
	for i, u := range users {
		docs[i] = u
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("MongoUserRepo: failed to write users: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("MongoUserRepo: failed to fetch user %s: %w", id, err)
	}
	return &user, nil
}

func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("MongoUserRepo: failed to fetch user by email: %w", err)
	}
	return &user, nil
}

// MongoBusinessRepo is the MongoDB-backed business collection.
type MongoBusinessRepo struct {
	coll *mongo.Collection
}

func NewMongoBusinessRepo() *MongoBusinessRepo {
	return &MongoBusinessRepo{
		coll: database.MongoClient.Database(database.DatabaseName).Collection(businessesCollection),
	}
}

func (r *MongoBusinessRepo) All(ctx context.Context) ([]models.Business, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("MongoBusinessRepo: failed to fetch businesses: %w", err)
	}
	defer cur.Close(ctx)

	var businesses []models.Business
	if err := cur.All(ctx, &businesses); err != nil {
		return nil, fmt.Errorf("MongoBusinessRepo: failed to decode businesses: %w", err)
	}
	return businesses, nil
}

func (r *MongoBusinessRepo) ReplaceAll(ctx context.Context, businesses []models.Business) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("MongoBusinessRepo: failed to clear businesses: %w", err)
	}
	real := make([]interface{}, 0, len(businesses))
	for _, b := range businesses {
		if b.IsDemo {
			continue
		}
		real = append(real, b)
	}
	if len(real) == 0 {
		return nil
	}
	if _, err := r.coll.InsertMany(ctx, real); err != nil {
		return fmt.Errorf("MongoBusinessRepo: failed to write businesses: %w", err)
	}
	return nil
}

func (r *MongoBusinessRepo) GetByID(ctx context.Context, id string) (*models.Business, error) {
	var business models.Business
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&business)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("MongoBusinessRepo: failed to fetch business %s: %w", id, err)
	}
	return &business, nil
}
