package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore maps collections onto Cloud Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Collection(name string) Collection {
	return &firestoreCollection{ref: s.client.Collection(name)}
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

type firestoreCollection struct {
	ref *firestore.CollectionRef
}

func (c *firestoreCollection) Name() string { return c.ref.ID }

func (c *firestoreCollection) List(ctx context.Context, q Query) ([]Document, error) {
	query := c.ref.Query
	if q.NotNull != "" {
		query = query.Where(q.NotNull, "!=", nil)
	}
	if q.OrderBy != "" {
		dir := firestore.Asc
		if q.Direction == Desc {
			dir = firestore.Desc
		}
		query = query.OrderBy(q.OrderBy, dir)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]Document, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, toDocument(snap.Ref.ID, snap.Data()))
	}
	return out, nil
}

func (c *firestoreCollection) Get(ctx context.Context, id string) (Document, error) {
	snap, err := c.ref.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDocument(snap.Ref.ID, snap.Data()), nil
}

func (c *firestoreCollection) Add(ctx context.Context, fields map[string]interface{}) (Document, error) {
	ref := c.ref.NewDoc()
	res, err := ref.Create(ctx, toFirestore(fields))
	if err != nil {
		return nil, err
	}
	// ServerTimestamp fields resolve to the commit time, which is the write result's update time.
	return toDocument(ref.ID, resolve(fields, res.UpdateTime)), nil
}

func (c *firestoreCollection) Set(ctx context.Context, id string, fields map[string]interface{}, merge bool) error {
	var err error
	if merge {
		_, err = c.ref.Doc(id).Set(ctx, toFirestore(fields), firestore.MergeAll)
	} else {
		_, err = c.ref.Doc(id).Set(ctx, toFirestore(fields))
	}
	return err
}

func (c *firestoreCollection) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range toFirestore(fields) {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	_, err := c.ref.Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

func (c *firestoreCollection) Delete(ctx context.Context, id string) error {
	_, err := c.ref.Doc(id).Delete(ctx)
	return err
}

func toFirestore(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if _, ok := v.(serverTimestamp); ok {
			out[k] = firestore.ServerTimestamp
			continue
		}
		out[k] = v
	}
	return out
}
