package models

import "go.mongodb.org/mongo-driver/bson"

// CartItem is one line item of a user's cart. Adding the same product twice
// creates two line items; there is no de-duplication.
type CartItem struct {
	ID                   string
	UserID               string
	Type                 string
	ProductID            string
	Name                 string
	Price                float64
	RequiresPrescription bool
}

func CartItemFromDoc(doc bson.M) (*CartItem, bool) {
	id, ok := docID(doc)
	if !ok {
		return nil, false
	}
	userID, ok := docString(doc, "userId")
	if !ok {
		return nil, false
	}
	itemType, ok := docString(doc, "type")
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

	return &CartItem{
		ID:                   id,
		UserID:               userID,
		Type:                 itemType,
		ProductID:            docStringOr(doc, "productId", ""),
		Name:                 name,
		Price:                price,
		RequiresPrescription: docBool(doc, "requiresPrescription", false),
	}, true
}

func (c *CartItem) ToDoc() bson.M {
	return bson.M{
		"_id":                  c.ID,
		"userId":               c.UserID,
		"type":                 c.Type,
		"productId":            c.ProductID,
		"name":                 c.Name,
		"price":                c.Price,
		"requiresPrescription": c.RequiresPrescription,
	}
}

// CartTotal is the sum of line-item prices, recomputed on every read.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price
	}
	return total
}

// CartRequiresPrescription reports whether any line item needs a prescription
// before checkout can proceed.
func CartRequiresPrescription(items []CartItem) bool {
	for _, item := range items {
		if item.RequiresPrescription {
			return true
		}
	}
	return false
}
