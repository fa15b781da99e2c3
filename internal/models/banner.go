package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Banner struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Image       []byte             `bson:"image" json:"image"`
}
