package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore maps collections onto a MongoDB database. Documents use string uuids as _id.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	return &MongoStore{client: client, db: client.Database(dbName)}
}

func (s *MongoStore) Collection(name string) Collection {
	return &mongoCollection{col: s.db.Collection(name)}
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates best-effort sort indexes for the given fields per collection.
func (s *MongoStore) EnsureIndexes(ctx context.Context, orderings map[string][]string) {
	for name, fields := range orderings {
		for _, field := range fields {
			_, _ = s.db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
				Keys: bson.D{{Key: field, Value: 1}},
			})
		}
	}
}

type mongoCollection struct {
	col *mongo.Collection
}

func (c *mongoCollection) Name() string { return c.col.Name() }

func (c *mongoCollection) List(ctx context.Context, q Query) ([]Document, error) {
	filter := bson.M{}
	if q.NotNull != "" {
		filter[q.NotNull] = bson.M{"$ne": nil}
	}
	if q.OrderBy != "" && q.OrderBy != q.NotNull {
		filter[q.OrderBy] = bson.M{"$exists": true}
	}
	opts := options.Find()
	if q.OrderBy != "" {
		dir := 1
		if q.Direction == Desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.OrderBy, Value: dir}})
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cur, err := c.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]Document, 0)
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		out = append(out, fromBSONDocument(raw))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mongoCollection) Get(ctx context.Context, id string) (Document, error) {
	var raw bson.M
	if err := c.col.FindOne(ctx, bson.M{"_id": id}).Decode(&raw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return fromBSONDocument(raw), nil
}

func (c *mongoCollection) Add(ctx context.Context, fields map[string]interface{}) (Document, error) {
	id := uuid.New().String()
	stored := resolve(fields, mongoNow())
	doc := bson.M{"_id": id}
	for k, v := range stored {
		doc[k] = v
	}
	if _, err := c.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return toDocument(id, stored), nil
}

func (c *mongoCollection) Set(ctx context.Context, id string, fields map[string]interface{}, merge bool) error {
	resolved := resolve(fields, mongoNow())
	if merge {
		_, err := c.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": resolved}, options.Update().SetUpsert(true))
		return err
	}
	_, err := c.col.ReplaceOne(ctx, bson.M{"_id": id}, resolved, options.Replace().SetUpsert(true))
	return err
}

func (c *mongoCollection) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	res, err := c.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": resolve(fields, mongoNow())})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *mongoCollection) Delete(ctx context.Context, id string) error {
	_, err := c.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// BSON datetimes hold milliseconds; truncate so the returned value equals the stored one.
func mongoNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func fromBSONDocument(raw bson.M) Document {
	d := make(Document, len(raw))
	for k, v := range raw {
		if k == "_id" {
			if s, ok := v.(string); ok {
				d["id"] = s
			} else if oid, ok := v.(primitive.ObjectID); ok {
				d["id"] = oid.Hex()
			}
			continue
		}
		d[k] = fromBSON(v)
	}
	return d
}

func fromBSON(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.A:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = fromBSON(e)
		}
		return out
	case bson.M:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = fromBSON(e)
		}
		return out
	case bson.D:
		out := make(map[string]interface{}, len(t))
		for _, e := range t {
			out[e.Key] = fromBSON(e.Value)
		}
		return out
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	}
	return v
}
