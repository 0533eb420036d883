package domain

import "strconv"

// ID is the server-assigned identifier of a catalog entity. Zero means unsaved.
type ID int64

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses a positive identifier from its decimal form.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return ID(n), nil
}

type Category struct {
	ID           ID     `json:"id"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
	Status       bool   `json:"status"`
	ProductCount int64  `json:"productCount"` // server-derived, read-only
}

// CategoryDraft is the editable part of a category. It doubles as the
// create/update request body, so productCount can never be submitted.
type CategoryDraft struct {
	CategoryName string `json:"categoryName" validate:"notblank,trimmin=2,trimmax=100"`
	Description  string `json:"description" validate:"max=500"`
	Status       bool   `json:"status"`
}

// Draft returns the editable fields of c.
func (c Category) Draft() CategoryDraft {
	return CategoryDraft{
		CategoryName: c.CategoryName,
		Description:  c.Description,
		Status:       c.Status,
	}
}
