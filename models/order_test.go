package models

import "testing"

func TestIsValidOrderStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Shipped", "Delivered", "Cancelled"} {
		if !IsValidOrderStatus(s) {
			t.Errorf("%q rejected, want accepted", s)
		}
	}
	for _, s := range []string{"", "pending", "SHIPPED", "Returned", "Shipped "} {
		if IsValidOrderStatus(s) {
			t.Errorf("%q accepted, want rejected", s)
		}
	}
}
