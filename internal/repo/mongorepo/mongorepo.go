// Package mongorepo stores tasks as flat documents in a MongoDB collection:
//
//	{ "_id": ObjectId, "name": string, "effort": string }
//
// Ids cross the package boundary as 24 character hex strings.
package mongorepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/BuzzLyutic/choretle/internal/model"
	"github.com/BuzzLyutic/choretle/internal/repo"
)

const DefaultCollection = "tasks"

type taskDocument struct {
	ID     primitive.ObjectID `bson:"_id"`
	Name   string             `bson:"name"`
	Effort string             `bson:"effort"`
}

func (d taskDocument) task() model.Task {
	return model.Task{
		ID: d.ID.Hex(),
		TaskData: model.TaskData{
			Name:   d.Name,
			Effort: model.Effort(d.Effort),
		},
	}
}

func payload(data model.TaskData) bson.D {
	return bson.D{
		{Key: "name", Value: data.Name},
		{Key: "effort", Value: data.Effort.String()},
	}
}

func byID(oid primitive.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: oid}}
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repo.InvalidID(id, err)
	}
	return oid, nil
}

type TaskRepo struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// Connect dials uri and binds the repository to database/collection.
// An empty collection name selects DefaultCollection.
func Connect(ctx context.Context, uri, database, collection string) (*TaskRepo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, repo.Unavailable("connect mongo", err)
	}
	return New(client, database, collection), nil
}

func New(client *mongo.Client, database, collection string) *TaskRepo {
	if collection == "" {
		collection = DefaultCollection
	}
	return &TaskRepo{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, repo.Unavailable("find tasks", err)
	}

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, repo.Unavailable("read tasks", err)
	}

	tasks := make([]model.Task, 0, len(docs))
	for _, d := range docs {
		tasks = append(tasks, d.task())
	}
	return tasks, nil
}

func (r *TaskRepo) Get(ctx context.Context, id string) (model.Task, error) {
	oid, err := parseID(id)
	if err != nil {
		return model.Task{}, err
	}

	var doc taskDocument
	err = r.collection.FindOne(ctx, byID(oid)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Task{}, repo.NotFound(id)
	}
	if err != nil {
		return model.Task{}, repo.Unavailable("find task", err)
	}
	return doc.task(), nil
}

func (r *TaskRepo) Create(ctx context.Context, data model.TaskData) (model.Task, error) {
	doc := taskDocument{
		ID:     primitive.NewObjectID(),
		Name:   data.Name,
		Effort: data.Effort.String(),
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return model.Task{}, repo.Unavailable("insert task", err)
	}
	return doc.task(), nil
}

func (r *TaskRepo) Update(ctx context.Context, id string, data model.TaskData) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	update := bson.D{{Key: "$set", Value: payload(data)}}
	if _, err := r.collection.UpdateOne(ctx, byID(oid), update); err != nil {
		return repo.Unavailable("update task", err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if _, err := r.collection.DeleteOne(ctx, byID(oid)); err != nil {
		return repo.Unavailable("delete task", err)
	}
	return nil
}

func (r *TaskRepo) Ping(ctx context.Context) error {
	return repo.Unavailable("ping mongo", r.client.Ping(ctx, readpref.Primary()))
}

func (r *TaskRepo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
