package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
)

var ErrNotFound = errors.New("document not found")

// Document is a schemaless record. Reads always carry the document id under "id".
type Document map[string]interface{}

// ID returns the document id or "" when absent.
func (d Document) ID() string {
	id, _ := d["id"].(string)
	return id
}

type serverTimestamp struct{}

// ServerTimestamp is a field value placeholder the backend replaces with its own clock at
// write time.
var ServerTimestamp = serverTimestamp{}

type Direction int

const (
	Asc Direction = iota
	Desc
)

// Query describes a List call. Zero Limit means no cap. Documents without the OrderBy
// field are left out. NotNull restricts results to documents where that field is present
// and non-null.
type Query struct {
	OrderBy   string
	Direction Direction
	Limit     int
	NotNull   string
}

// Collection is a named group of independent documents addressed by id.
type Collection interface {
	Name() string
	List(ctx context.Context, q Query) ([]Document, error)
	Get(ctx context.Context, id string) (Document, error)
	// Add persists fields under a new server-generated id and returns the stored document with
	// ServerTimestamp values resolved to the commit time.
	Add(ctx context.Context, fields map[string]interface{}) (Document, error)
	// Set writes fields to id, creating the document when missing. With merge, fields not
	// named are kept.
	Set(ctx context.Context, id string, fields map[string]interface{}, merge bool) error
	// Update changes the named fields of an existing document; ErrNotFound if it is missing.
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	// Delete removes id. Deleting a missing document is not an error.
	Delete(ctx context.Context, id string) error
}

type Store interface {
	Collection(name string) Collection
	Close() error
}

// resolve returns a copy of fields with every ServerTimestamp replaced by t.
func resolve(fields map[string]interface{}, t time.Time) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if _, ok := v.(serverTimestamp); ok {
			out[k] = t
			continue
		}
		out[k] = v
	}
	return out
}

// compareValues orders nil < bool < numbers < time < strings, then by value.
func compareValues(a, b interface{}) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch av := a.(type) {
	case bool:
		bv := b.(bool)
		if av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	case time.Time:
		bv := b.(time.Time)
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		}
		return 0
	case string:
		return strings.Compare(av, b.(string))
	}
	if fa, ok := toFloat(a); ok {
		fb, _ := toFloat(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
	}
	return 0
}

func rank(v interface{}) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case time.Time:
		return 3
	case string:
		return 4
	}
	if _, ok := toFloat(v); ok {
		return 2
	}
	return 5
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// sortDocuments applies q's ordering, null filter and limit in place.
func sortDocuments(docs []Document, q Query) []Document {
	if q.NotNull != "" {
		kept := docs[:0]
		for _, d := range docs {
			if v, ok := d[q.NotNull]; ok && v != nil {
				kept = append(kept, d)
			}
		}
		docs = kept
	}
	if q.OrderBy != "" {
		// Firestore leaves out documents that lack the ordering field.
		kept := docs[:0]
		for _, d := range docs {
			if _, ok := d[q.OrderBy]; ok {
				kept = append(kept, d)
			}
		}
		docs = kept
		sort.SliceStable(docs, func(i, j int) bool {
			c := compareValues(docs[i][q.OrderBy], docs[j][q.OrderBy])
			if q.Direction == Desc {
				return c > 0
			}
			return c < 0
		})
	}
	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs
}
