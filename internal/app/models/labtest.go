package models

import "go.mongodb.org/mongo-driver/bson"

type LabTest struct {
	ID                      string
	Name                    string
	Price                   float64
	Description             string
	PreparationInstructions string
}

func LabTestFromDoc(doc bson.M) (*LabTest, bool) {
	id, ok := docID(doc)
	if !ok {
		return nil, false
	}
	name, ok := docString(doc, "name")
	if !ok {
		return nil, false
	}
	price, ok := docFloat(doc, "price")
	if !ok {
		return nil, false
	}
	description, ok := docString(doc, "description")
	if !ok {
		return nil, false
	}

	return &LabTest{
		ID:                      id,
		Name:                    name,
		Price:                   price,
		Description:             description,
		PreparationInstructions: docStringOr(doc, "preparationInstructions", ""),
	}, true
}

func (t *LabTest) ToDoc() bson.M {
	doc := bson.M{
		"_id":         t.ID,
		"name":        t.Name,
		"price":       t.Price,
		"description": t.Description,
	}
	if t.PreparationInstructions != "" {
		doc["preparationInstructions"] = t.PreparationInstructions
	}
	return doc
}
