package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// InsertResult mirrors the fields of a driver insert acknowledgement.
type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

func NewInsertResult(id primitive.ObjectID) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: id}
}

// UpdateResult mirrors the fields of a driver update acknowledgement.
// UpsertedID is nil unless the update created a document.
type UpdateResult struct {
	Acknowledged  bool                `json:"acknowledged"`
	MatchedCount  int64               `json:"matchedCount"`
	ModifiedCount int64               `json:"modifiedCount"`
	UpsertedCount int64               `json:"upsertedCount"`
	UpsertedID    *primitive.ObjectID `json:"upsertedId"`
}

// DeleteResult echoes the requested id next to the number of removed documents.
type DeleteResult struct {
	ID           string `json:"_id"`
	DeletedCount int64  `json:"deletedCount"`
}

// CreatedCategory is the body returned after adding a category.
type CreatedCategory struct {
	ID   primitive.ObjectID `json:"_id"`
	Name string             `json:"name"`
}
