package docstore

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{db: db}
}

func (s *mongoStore) Name() string {
	return s.db.Name()
}

func (s *mongoStore) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return idString(res.InsertedID), nil
}

func (s *mongoStore) GetDocuments(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, mongoFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	docs := []Document{}
	for cur.Next(ctx) {
		// cur.Current is reused by the next call to Next.
		raw := make(bson.Raw, len(cur.Current))
		copy(raw, cur.Current)

		var id string
		if v, err := raw.LookupErr("_id"); err == nil {
			id = rawIDString(v)
		}
		docs = append(docs, NewDocument(id, func(v any) error {
			return bson.Unmarshal(raw, v)
		}))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}
	return docs, nil
}

func (s *mongoStore) CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, mongoFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (s *mongoStore) ListCollectionNames(ctx context.Context, limit int) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (s *mongoStore) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

// mongoFilter translates f into a query document. The search term is quoted
// so it always matches literally.
func mongoFilter(f Filter) bson.D {
	q := bson.D{}
	for _, c := range f.Equals {
		q = append(q, bson.E{Key: c.Field, Value: c.Value})
	}
	if f.Match != nil && len(f.Match.Fields) > 0 {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(f.Match.Term), Options: "i"}
		or := bson.A{}
		for _, field := range f.Match.Fields {
			or = append(or, bson.D{{Key: field, Value: rx}})
		}
		q = append(q, bson.E{Key: "$or", Value: or})
	}
	return q
}

func idString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func rawIDString(v bson.RawValue) string {
	if oid, ok := v.ObjectIDOK(); ok {
		return oid.Hex()
	}
	if s, ok := v.StringValueOK(); ok {
		return s
	}
	return v.String()
}
