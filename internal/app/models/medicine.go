package models

import "go.mongodb.org/mongo-driver/bson"

type Medicine struct {
	ID                   string
	Name                 string
	Price                float64
	Description          string
	Manufacturer         string
	Category             string
	RequiresPrescription bool
	InStock              bool
}

func MedicineFromDoc(doc bson.M) (*Medicine, bool) {
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

	return &Medicine{
		ID:                   id,
		Name:                 name,
		Price:                price,
		Description:          description,
		Manufacturer:         docStringOr(doc, "manufacturer", ""),
		Category:             docStringOr(doc, "category", ""),
		RequiresPrescription: docBool(doc, "requiresPrescription", false),
		InStock:              docBool(doc, "inStock", true),
	}, true
}

func (m *Medicine) ToDoc() bson.M {
	doc := bson.M{
		"_id":                  m.ID,
		"name":                 m.Name,
		"price":                m.Price,
		"description":          m.Description,
		"requiresPrescription": m.RequiresPrescription,
		"inStock":              m.InStock,
	}
	if m.Manufacturer != "" {
		doc["manufacturer"] = m.Manufacturer
	}
	if m.Category != "" {
		doc["category"] = m.Category
	}
	return doc
}

// MatchesSearch reports a case-insensitive substring match against the
// medicine's name, manufacturer or category.
func (m *Medicine) MatchesSearch(term string) bool {
	return matchesFold(term, m.Name, m.Manufacturer, m.Category)
}
