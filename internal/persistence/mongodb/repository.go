// Package mongodb provides MongoDB-backed persistence for users and
// exercises.
package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"example.com/exercisetracker/internal/domain"
	"example.com/exercisetracker/internal/observability"
)

const (
	usersCollection     = "users"
	exercisesCollection = "exercises"
)

type userDocument struct {
	ID        string    `bson:"_id"`
	Username  string    `bson:"username"`
	CreatedAt time.Time `bson:"createdAt"`
}

type exerciseDocument struct {
	ID          string    `bson:"_id"`
	UserID      string    `bson:"userId"`
	Description string    `bson:"description"`
	Duration    int       `bson:"duration"`
	Date        time.Time `bson:"date"`
}

// Repository implements domain.Repository over two collections.
type Repository struct {
	users     *mongo.Collection
	exercises *mongo.Collection
}

// NewRepository constructs a Repository on the given database.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		users:     db.Collection(usersCollection),
		exercises: db.Collection(exercisesCollection),
	}
}

// CreateUser inserts the user document.
func (r *Repository) CreateUser(ctx context.Context, user domain.User) error {
	doc := userDocument{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		return err
	}
	observability.RecordUserCreated()
	return nil
}

// GetUser fetches a user by id, returning nil when absent.
func (r *Repository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var doc userDocument
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	user := toUser(doc)
	return &user, nil
}

// ListUsers returns every user, projected to id and username.
func (r *Repository) ListUsers(ctx context.Context) ([]domain.User, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "username": 1})
	cursor, err := r.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toUser(doc))
	}
	return out, nil
}

// CreateExercise inserts the exercise document.
func (r *Repository) CreateExercise(ctx context.Context, exercise domain.Exercise) error {
	doc := exerciseDocument{
		ID:          exercise.ID,
		UserID:      exercise.UserID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	}
	if _, err := r.exercises.InsertOne(ctx, doc); err != nil {
		return err
	}
	observability.RecordExerciseLogged(exercise.Date)
	return nil
}

// ListExercises queries the exercises collection with the filter's
// owner and inclusive date bounds, sorted ascending by (date, _id).
func (r *Repository) ListExercises(ctx context.Context, filter domain.LogFilter) ([]domain.Exercise, error) {
	query := bson.M{"userId": filter.UserID}

	dateBounds := bson.M{}
	if filter.From != nil {
		dateBounds["$gte"] = *filter.From
	}
	if filter.To != nil {
		dateBounds["$lte"] = *filter.To
	}
	if len(dateBounds) > 0 {
		query["date"] = dateBounds
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.exercises.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []exerciseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.Exercise, 0, len(docs))
	for _, doc := range docs {
		out = append(out, domain.Exercise{
			ID:          doc.ID,
			UserID:      doc.UserID,
			Description: doc.Description,
			Duration:    doc.Duration,
			Date:        doc.Date,
		})
	}
	return out, nil
}

func toUser(doc userDocument) domain.User {
	return domain.User{
		ID:        doc.ID,
		Username:  doc.Username,
		CreatedAt: doc.CreatedAt,
	}
}
