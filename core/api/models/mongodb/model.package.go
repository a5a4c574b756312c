package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Package định nghĩa gói dịch vụ mà khách hàng có thể đăng ký
type Package struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"unique"`
	Lob       string             `json:"lob" bson:"lob" index:"single"`
	Price     float64            `json:"price" bson:"price"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
