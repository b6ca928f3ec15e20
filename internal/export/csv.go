// Package export turns in-memory record lists into delimited text for
// the admin dashboard's download links.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"shopfront/internal/models"
)

// Record is one exportable row, keyed by field name.
type Record = map[string]interface{}

// Field lists mirror the dashboard's export columns.
var (
	UserFields    = []string{"id", "username", "email", "full_name", "is_admin", "created_at"}
	OrderFields   = []string{"order_number", "user_id", "total_amount", "status", "shipping_address", "created_at"}
	ProductFields = []string{"id", "name", "price", "stock_quantity", "category", "created_at"}
)

// ToDelimitedText projects each record onto the ordered field list and
// serializes the result: a header row of the field names, every value
// quoted, embedded quotes doubled, commas between fields and a newline
// between rows. A nil or absent value becomes an empty quoted field.
// An empty record list yields exactly the header row.
func ToDelimitedText(records []Record, fields []string) string {
	var b strings.Builder
	b.WriteString(strings.Join(fields, ","))

	for _, rec := range records {
		b.WriteByte('\n')
		for i, field := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(escape(formatValue(rec[field])))
			b.WriteByte('"')
		}
	}
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

func UserRecords(users []models.User) []Record {
	records := make([]Record, 0, len(users))
	for _, u := range users {
		records = append(records, Record{
			"id":         u.ID,
			"username":   u.Username,
			"email":      u.Email,
			"full_name":  u.FullName,
			"is_admin":   u.IsAdmin,
			"created_at": u.CreatedAt,
		})
	}
	return records
}

func OrderRecords(orders []models.Order) []Record {
	records := make([]Record, 0, len(orders))
	for _, o := range orders {
		records = append(records, Record{
			"order_number":     o.OrderNumber,
			"user_id":          o.UserID,
			"total_amount":     o.TotalAmount,
			"status":           o.Status,
			"shipping_address": o.ShippingAddress,
			"created_at":       o.CreatedAt,
		})
	}
	return records
}

func ProductRecords(products []models.Product) []Record {
	records := make([]Record, 0, len(products))
	for _, p := range products {
		records = append(records, Record{
			"id":             p.ID,
			"name":           p.Name,
			"price":          p.Price,
			"stock_quantity": p.StockQuantity,
			"category":       p.Category,
			"created_at":     p.CreatedAt,
		})
	}
	return records
}
