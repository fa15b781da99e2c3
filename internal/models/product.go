package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product keeps its image inline as BSON binary; JSON renders it base64 encoded.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Category    string             `bson:"category" json:"category"`
	Name        string             `bson:"name" json:"name"`
	Description []string           `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Image       []byte             `bson:"image" json:"image"`
}

// DescriptionLines splits a free-text description into its lines, one entry per "\n".
func DescriptionLines(description string) []string {
	return strings.Split(description, "\n")
}
