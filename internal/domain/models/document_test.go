package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	model "blog-service/internal/domain/models"
)

func TestDocument_ID(t *testing.T) {
	oid := bson.NewObjectID()

	tests := []struct {
		name string
		doc  model.Document
		want string
	}{
		{name: "string id", doc: model.Document{"_id": "abc"}, want: "abc"},
		{name: "object id", doc: model.Document{"_id": oid}, want: oid.Hex()},
		{name: "missing id", doc: model.Document{"title": "x"}, want: ""},
		{name: "unsupported id type", doc: model.Document{"_id": 42}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.ID())
		})
	}
}

func TestDocument_WithoutID(t *testing.T) {
	doc := model.Document{"_id": "abc", "title": "Hello"}

	stripped := doc.WithoutID()

	assert.Equal(t, model.Document{"title": "Hello"}, stripped)
	assert.Equal(t, "abc", doc.ID(), "original must be untouched")
	assert.Equal(t, model.Document{}, model.Document(nil).WithoutID())
}

func TestDocument_StringField(t *testing.T) {
	doc := model.Document{"title": "Hello", "views": 3}

	title, ok := doc.StringField("title")
	assert.True(t, ok)
	assert.Equal(t, "Hello", title)

	_, ok = doc.StringField("views")
	assert.False(t, ok)

	_, ok = doc.StringField("missing")
	assert.False(t, ok)
}
