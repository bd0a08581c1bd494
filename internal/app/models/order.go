package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch OrderStatus(raw) {
	case OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return OrderStatus(raw), true
	}
	return "", false
}

type OrderItem struct {
	ProductID            string
	Type                 string
	Name                 string
	Price                float64
	RequiresPrescription bool
}

// Order snapshots the cart at checkout time. Cancellation is a status flag,
// never a hard delete.
type Order struct {
	ID              string
	UserID          string
	OrderDate       time.Time
	Items           []OrderItem
	Status          OrderStatus
	TotalAmount     float64
	DeliveryAddress string
	PrescriptionID  string
}

func OrderFromDoc(doc bson.M) (*Order, bool) {
	id, ok := docID(doc)
	if !ok {
		return nil, false
	}
	userID, ok := docString(doc, "userId")
	if !ok {
		return nil, false
	}
	orderDate, ok := docTime(doc, "orderDate")
	if !ok {
		return nil, false
	}
	statusRaw, ok := docString(doc, "status")
	if !ok {
		return nil, false
	}
	status, ok := ParseOrderStatus(statusRaw)
	if !ok {
		return nil, false
	}
	totalAmount, ok := docFloat(doc, "totalAmount")
	if !ok {
		return nil, false
	}
	itemsRaw, ok := doc["items"].(bson.A)
	if !ok {
		return nil, false
	}

	items := make([]OrderItem, 0, len(itemsRaw))
	for _, entry := range itemsRaw {
		itemDoc, ok := entry.(bson.M)
		if !ok {
			continue
		}
		name, ok := docString(itemDoc, "name")
		if !ok {
			continue
		}
		price, ok := docFloat(itemDoc, "price")
		if !ok {
			continue
		}
		items = append(items, OrderItem{
			ProductID:            docStringOr(itemDoc, "productId", ""),
			Type:                 docStringOr(itemDoc, "type", ""),
			Name:                 name,
			Price:                price,
			RequiresPrescription: docBool(itemDoc, "requiresPrescription", false),
		})
	}

	return &Order{
		ID:              id,
		UserID:          userID,
		OrderDate:       orderDate,
		Items:           items,
		Status:          status,
		TotalAmount:     totalAmount,
		DeliveryAddress: docStringOr(doc, "deliveryAddress", ""),
		PrescriptionID:  docStringOr(doc, "prescriptionId", ""),
	}, true
}

func (o *Order) ToDoc() bson.M {
	items := make(bson.A, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, bson.M{
			"productId":            item.ProductID,
			"type":                 item.Type,
			"name":                 item.Name,
			"price":                item.Price,
			"requiresPrescription": item.RequiresPrescription,
		})
	}

	doc := bson.M{
		"_id":         o.ID,
		"userId":      o.UserID,
		"orderDate":   primitive.NewDateTimeFromTime(o.OrderDate),
		"items":       items,
		"status":      string(o.Status),
		"totalAmount": o.TotalAmount,
	}
	if o.DeliveryAddress != "" {
		doc["deliveryAddress"] = o.DeliveryAddress
	}
	if o.PrescriptionID != "" {
		doc["prescriptionId"] = o.PrescriptionID
	}
	return doc
}
