package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CaseCategory định nghĩa danh mục phân loại case theo nhóm dịch vụ
type CaseCategory struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"unique"`
	Lob       string             `json:"lob" bson:"lob" index:"single"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
