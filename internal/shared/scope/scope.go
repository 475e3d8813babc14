// Package scope holds reusable gorm scopes for salary period queries.
package scope

import "gorm.io/gorm"

func column(table, name string) string {
	if table == "" {
		return name
	}
	return table + "." + name
}

// Staff restricts a query to one staff member.
func Staff(table, staffID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column(table, "staff_id")+" = ?", staffID)
	}
}

// Period filters by month and year; a zero value leaves that filter off.
func Period(table string, month, year int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if month != 0 {
			db = db.Where(column(table, "month")+" = ?", month)
		}
		if year != 0 {
			db = db.Where(column(table, "year")+" = ?", year)
		}
		return db
	}
}

// NewestFirst orders periods year desc, month desc.
func NewestFirst(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column(table, "year") + " DESC").Order(column(table, "month") + " DESC")
	}
}

// Page applies LIMIT/OFFSET for a 1-based page. Callers bound page and
// pageSize before calling.
func Page(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
