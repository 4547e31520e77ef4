package utils

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestProductListQueryFilter(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     bson.M
	}{
		{"no category", "", bson.M{"active": true}},
		{"sentinel All", "All", bson.M{"active": true}},
		{"whitespace only", "   ", bson.M{"active": true}},
		{"real category", "mugs", bson.M{"active": true, "category": "mugs"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, _ := ProductListQuery(tt.category, "")
			if !reflect.DeepEqual(filter, tt.want) {
				t.Errorf("filter = %v, want %v", filter, tt.want)
			}
			if filter["active"] != true {
				t.Error("listing filter must always restrict to active products")
			}
		})
	}
}

func TestProductListQuerySort(t *testing.T) {
	tests := []struct {
		sort string
		want bson.D
	}{
		{"price_asc", bson.D{{Key: "price", Value: 1}}},
		{"price_desc", bson.D{{Key: "price", Value: -1}}},
		{"", bson.D{{Key: "createdAt", Value: -1}}},
		{"newest", bson.D{{Key: "createdAt", Value: -1}}},
		{"bogus", bson.D{{Key: "createdAt", Value: -1}}},
	}
	for _, tt := range tests {
		_, sortDoc := ProductListQuery("", tt.sort)
		if !reflect.DeepEqual(sortDoc, tt.want) {
			t.Errorf("sort(%q) = %v, want %v", tt.sort, sortDoc, tt.want)
		}
	}
}

func TestOrderListQuery(t *testing.T) {
	filter, sortDoc := OrderListQuery("", "")
	if len(filter) != 0 {
		t.Errorf("default filter = %v, want empty", filter)
	}
	if !reflect.DeepEqual(sortDoc, bson.D{{Key: "createdAt", Value: -1}}) {
		t.Errorf("sort = %v, want createdAt desc", sortDoc)
	}

	filter, _ = OrderListQuery("Shipped", "")
	if filter["status"] != "Shipped" {
		t.Errorf("status filter = %v", filter)
	}

	filter, _ = OrderListQuery("", "alice")
	or, ok := filter["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("search filter = %v, want $or of two clauses", filter)
	}
	name := or[0].(bson.M)["customer.name"].(bson.M)
	email := or[1].(bson.M)["customer.email"].(bson.M)
	for _, clause := range []bson.M{name, email} {
		if clause["$regex"] != "alice" || clause["$options"] != "i" {
			t.Errorf("clause = %v, want case-insensitive substring on alice", clause)
		}
	}
}

func TestOrderListQueryEscapesRegex(t *testing.T) {
	filter, _ := OrderListQuery("", "a.b+c")
	or := filter["$or"].(bson.A)
	got := or[0].(bson.M)["customer.name"].(bson.M)["$regex"]
	if got != `a\.b\+c` {
		t.Errorf("regex = %q, metacharacters not escaped", got)
	}
}

func TestPagination(t *testing.T) {
	t.Setenv("READ_QUERY_MAX_LIMIT", "")
	page, limit, skip := Pagination("", "", DefaultProductPageSize)
	if page != 1 || limit != 12 || skip != 0 {
		t.Errorf("defaults = (%d, %d, %d), want (1, 12, 0)", page, limit, skip)
	}

	page, limit, skip = Pagination("2", "5", DefaultProductPageSize)
	if page != 2 || limit != 5 || skip != 5 {
		t.Errorf("page 2 limit 5 = (%d, %d, %d), want (2, 5, 5)", page, limit, skip)
	}

	page, limit, skip = Pagination("-3", "0", DefaultProductPageSize)
	if page != 1 || limit != 12 || skip != 0 {
		t.Errorf("out-of-range inputs = (%d, %d, %d), want (1, 12, 0)", page, limit, skip)
	}

	_, limit, _ = Pagination("1", "5000", DefaultProductPageSize)
	if limit != 100 {
		t.Errorf("unbounded limit = %d, want clamp to 100", limit)
	}

	t.Setenv("READ_QUERY_MAX_LIMIT", "30")
	_, limit, _ = Pagination("1", "5000", DefaultProductPageSize)
	if limit != 30 {
		t.Errorf("clamped limit = %d, want 30", limit)
	}
}
