package utils

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CategoryAll is the sentinel the storefront sends when no category filter
// is selected.
const CategoryAll = "All"

const DefaultProductPageSize = 12

// ProductListQuery builds the public catalog listing query. Inactive
// products are excluded no matter what the caller supplies.
func ProductListQuery(category, sort string) (bson.M, bson.D) {
	filter := bson.M{"active": true}

	category = strings.TrimSpace(category)
	if category != "" && category != CategoryAll {
		filter["category"] = category
	}

	sortDoc := bson.D{{Key: "createdAt", Value: -1}} // newest first
	switch strings.TrimSpace(sort) {
	case "price_asc":
		sortDoc = bson.D{{Key: "price", Value: 1}}
	case "price_desc":
		sortDoc = bson.D{{Key: "price", Value: -1}}
	}

	return filter, sortDoc
}

// OrderListQuery builds the admin order listing query: optional exact status
// match, optional case-insensitive substring search over customer name or
// email. Always sorted newest first, never paginated.
func OrderListQuery(status, search string) (bson.M, bson.D) {
	filter := bson.M{}

	if status = strings.TrimSpace(status); status != "" {
		filter["status"] = status
	}
	if search = strings.TrimSpace(search); search != "" {
		pattern := regexp.QuoteMeta(search)
		filter["$or"] = bson.A{
			bson.M{"customer.name": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"customer.email": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	return filter, bson.D{{Key: "createdAt", Value: -1}}
}

// Pagination normalizes page/limit query values and returns skip/limit for
// the cursor. Limit is clamped to MaxReadLimit.
func Pagination(pageStr, limitStr string, defaultLimit int) (page, limit int, skip int64) {
	page = ParseIntDefault(pageStr, 1)
	limit = ParseIntDefault(limitStr, defaultLimit)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if max := MaxReadLimit(); limit > max {
		limit = max
	}
	return page, limit, int64((page - 1) * limit)
}
