package mongo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	mongo_client "blog-service/internal/infrastructure/outbound/repository/mongo"
)

func TestInsertedID(t *testing.T) {
	oid := bson.NewObjectID()

	assert.Equal(t, oid.Hex(), mongo_client.InsertedID(oid))
	assert.Equal(t, "custom", mongo_client.InsertedID("custom"))
	assert.Equal(t, "42", mongo_client.InsertedID(42))
}
