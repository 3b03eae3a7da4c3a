package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection is the part of *mongo.Collection the repositories use.
//
//go:generate mockery --name Collection --dir . --output ../../../../../mocks/mongo --outpkg mocks --with-expecter --filename Collection.go
type Collection interface {
	InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
}

var _ Collection = (*mongo.Collection)(nil)
