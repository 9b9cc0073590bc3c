package repository

import (
	"gorm.io/gorm"
)

// Page is a normalized page request.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps a raw page request: number < 1 becomes 1, size < 1 becomes
// defaultSize and size above maxSize becomes maxSize.
func NewPage(number, size, defaultSize, maxSize int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	return Page{Number: number, Size: size}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Paginate is a scope applying the page's offset and limit.
func Paginate(p Page) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.Size)
	}
}

// findPage counts the rows matched by q, then loads the requested slice of
// them. The fetch scopes (ordering, preloads) are not part of the count.
func findPage[T any](q *gorm.DB, p Page, dest *[]T, fetch ...func(*gorm.DB) *gorm.DB) (int64, error) {
	var total int64
	q = q.Model(new(T)).Session(&gorm.Session{})

	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 || p.Offset() >= int(total) {
		*dest = []T{}
		return total, nil
	}

	if err := q.Scopes(fetch...).Scopes(Paginate(p)).Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}
