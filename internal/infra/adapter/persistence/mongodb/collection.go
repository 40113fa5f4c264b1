// Package mongodb stores document collections in MongoDB.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinic-records/internal/common/pagination"
	"clinic-records/internal/domain/entity"
	"clinic-records/internal/observability/metrics"
)

// immutableFields are never overwritten by Update.
var immutableFields = []string{"_id", "id", "createdAt"}

// stableOrder is the order used by every listing.
var stableOrder = bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}

// Collection implements repository.Repository[T] over one MongoDB collection.
type Collection[T any] struct {
	coll *mongo.Collection
}

// NewCollection returns a Collection for db.<name>.
func NewCollection[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{coll: db.Collection(name)}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.coll.Name() }

func (c *Collection[T]) FindAll(ctx context.Context) ([]*T, error) {
	defer metrics.ObserveDBQuery(c.Name(), "find_all", time.Now())
	cur, err := c.coll.Find(ctx, bson.D{}, options.Find().SetSort(stableOrder))
	if err != nil {
		return nil, fmt.Errorf("FindAll: %w", err)
	}
	docs, err := decodeAll[T](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("FindAll: %w", err)
	}
	return docs, nil
}

// FindAllPaginated counts and fetches with the same empty filter. The two
// operations do not share a snapshot.
func (c *Collection[T]) FindAllPaginated(ctx context.Context, params pagination.Params) ([]*T, uint64, error) {
	defer metrics.ObserveDBQuery(c.Name(), "find_all_paginated", time.Now())
	filter := bson.D{}

	total, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("FindAllPaginated: count: %w", err)
	}

	opts := options.Find().
		SetSort(stableOrder).
		SetSkip(int64(params.Offset())).
		SetLimit(int64(params.Limit))
	cur, err := c.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("FindAllPaginated: %w", err)
	}
	docs, err := decodeAll[T](ctx, cur)
	if err != nil {
		return nil, 0, fmt.Errorf("FindAllPaginated: %w", err)
	}
	return docs, uint64(total), nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	defer metrics.ObserveDBQuery(c.Name(), "find_by_id", time.Now())
	doc, err := c.findOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	return doc, nil
}

// FindOneBy returns the oldest document whose field equals value.
func (c *Collection[T]) FindOneBy(ctx context.Context, field, value string) (*T, error) {
	defer metrics.ObserveDBQuery(c.Name(), "find_one_by", time.Now())
	doc, err := c.findOne(ctx, bson.D{{Key: field, Value: value}})
	if err != nil {
		return nil, fmt.Errorf("FindOneBy: %w", err)
	}
	return doc, nil
}

// Insert assigns an id when doc has none and stores it.
func (c *Collection[T]) Insert(ctx context.Context, doc *T) (*T, error) {
	defer metrics.ObserveDBQuery(c.Name(), "insert", time.Now())
	d, ok := any(doc).(entity.Document)
	if !ok {
		return nil, fmt.Errorf("Insert: %T does not implement entity.Document", doc)
	}
	entity.EnsureID(d)

	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("Insert: %w", err)
	}
	return doc, nil
}

// Update $sets fields on the document and returns the updated document.
// It returns entity.ErrNotFound when no document has the id.
func (c *Collection[T]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	defer metrics.ObserveDBQuery(c.Name(), "update", time.Now())
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	for _, k := range immutableFields {
		delete(set, k)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("Update: %w: no fields to update", entity.ErrInvalidInput)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	res := c.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: set}}, opts)

	var doc T
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("Update: %w", err)
	}
	return &doc, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	defer metrics.ObserveDBQuery(c.Name(), "delete", time.Now())
	res, err := c.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (c *Collection[T]) findOne(ctx context.Context, filter bson.D) (*T, error) {
	var doc T
	err := c.coll.FindOne(ctx, filter, options.FindOne().SetSort(stableOrder)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func decodeAll[T any](ctx context.Context, cur *mongo.Cursor) ([]*T, error) {
	defer func() { _ = cur.Close(ctx) }()

	docs := make([]*T, 0, 16)
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		docs = append(docs, &doc)
	}
	return docs, cur.Err()
}
