package models

import "gorm.io/gorm"

const (
	OrderStatusInitiated = "INITIATED"
	OrderStatusPaid      = "PAID"
	OrderStatusFailed    = "FAILED"
	OrderStatusCancelled = "CANCELLED"

	DeliveryOrdered   = "Ordered"
	DeliveryShipped   = "Shipped"
	DeliveryDelivered = "Delivered"
	DeliveryCancelled = "Cancelled"
)

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusInitiated, OrderStatusPaid, OrderStatusFailed, OrderStatusCancelled:
		return true
	}
	return false
}

func ValidDeliveryStatus(delivery string) bool {
	switch delivery {
	case DeliveryOrdered, DeliveryShipped, DeliveryDelivered, DeliveryCancelled:
		return true
	}
	return false
}

// RefundsWallet reports whether moving an order from its current status to
// newStatus credits the order amount back to the user's wallet. Only the
// PAID to CANCELLED edge refunds.
func RefundsWallet(currentStatus, newStatus string) bool {
	return newStatus == OrderStatusCancelled && currentStatus == OrderStatusPaid
}

type Order struct {
	gorm.Model
	UserID          int              `json:"userId"`
	User            User             `json:"user" gorm:"foreignKey:UserID"`
	Amount          float64          `json:"amount"`
	Status          string           `json:"status" gorm:"size:20;default:'INITIATED'"`
	Delivery        string           `json:"delivery" gorm:"size:20;default:'Ordered'"`
	RazorpayOrderId string           `json:"razorpayOrderId"`
	OrderItems      []OrderItem      `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ShippingAddress *ShippingAddress `json:"shippingAddress" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID   int     `json:"orderId"`
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type ShippingAddress struct {
	gorm.Model
	OrderID    int    `json:"orderId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type Wallet struct {
	gorm.Model
	UserID  int     `json:"userId" gorm:"uniqueIndex"`
	Balance float64 `json:"balance"`
}

const (
	TransactionCredit = "CREDIT"
	TransactionDebit  = "DEBIT"
)

type Transaction struct {
	gorm.Model
	WalletID    int     `json:"walletId"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type" gorm:"size:10"`
	Description string  `json:"description"`
}
