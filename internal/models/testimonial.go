package models

import "go.mongodb.org/mongo-driver/bson"

// Testimonial is stored exactly as the reviewer submitted it, plus the generated _id.
type Testimonial = bson.M
