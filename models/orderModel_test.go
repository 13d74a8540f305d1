package models

import "testing"

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{OrderStatusInitiated, OrderStatusPaid, OrderStatusFailed, OrderStatusCancelled} {
		if !ValidOrderStatus(status) {
			t.Errorf("%q should be valid", status)
		}
	}
	for _, status := range []string{"", "paid", "SHIPPED", "DONE"} {
		if ValidOrderStatus(status) {
			t.Errorf("%q should be invalid", status)
		}
	}
}

func TestValidDeliveryStatus(t *testing.T) {
	for _, delivery := range []string{DeliveryOrdered, DeliveryShipped, DeliveryDelivered, DeliveryCancelled} {
		if !ValidDeliveryStatus(delivery) {
			t.Errorf("%q should be valid", delivery)
		}
	}
	for _, delivery := range []string{"", "shipped", "PAID", "Returned"} {
		if ValidDeliveryStatus(delivery) {
			t.Errorf("%q should be invalid", delivery)
		}
	}
}

func TestRefundsWallet(t *testing.T) {
	tests := []struct {
		current string
		next    string
		want    bool
	}{
		{OrderStatusPaid, OrderStatusCancelled, true},
		{OrderStatusInitiated, OrderStatusCancelled, false},
		{OrderStatusFailed, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusCancelled, false},
		{OrderStatusPaid, OrderStatusFailed, false},
		{OrderStatusPaid, OrderStatusPaid, false},
	}
	for _, tt := range tests {
		if got := RefundsWallet(tt.current, tt.next); got != tt.want {
			t.Errorf("RefundsWallet(%q, %q) = %v, want %v", tt.current, tt.next, got, tt.want)
		}
	}
}
