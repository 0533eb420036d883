package domain

import (
	"strconv"
	"strings"
)

type Unit string

func (u Unit) String() string {
	return string(u)
}

const (
	UnitWeight Unit = "weight" // g, kg
	UnitVolume Unit = "volume" // ml, l
	UnitSize   Unit = "size"   // S, M, L, XL
	UnitLength Unit = "length" // cm, m
	UnitOther  Unit = "other"
)

var Units = []Unit{
	UnitWeight,
	UnitVolume,
	UnitSize,
	UnitLength,
	UnitOther,
}

func (u Unit) Valid() bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}

func (u Unit) Label() string {
	switch u {
	case UnitWeight:
		return "Weight (g, kg)"
	case UnitVolume:
		return "Volume (ml, l)"
	case UnitSize:
		return "Size (S, M, L, XL)"
	case UnitLength:
		return "Length (cm, m)"
	case UnitOther:
		return "Other"
	default:
		return "-"
	}
}

// Suffix is the magnitude suffix shown next to a size value.
func (u Unit) Suffix() string {
	switch u {
	case UnitWeight:
		return "g"
	case UnitVolume:
		return "ml"
	case UnitLength:
		return "cm"
	default:
		return ""
	}
}

type Size struct {
	ID           ID     `json:"id"`
	SizeName     string `json:"sizeName"`
	Description  string `json:"description"`
	Value        string `json:"value"`
	Unit         Unit   `json:"unit"`
	DisplayOrder *int   `json:"displayOrder"`
	Status       bool   `json:"status"`
	ProductCount int64  `json:"productCount"` // server-derived, read-only
}

// Label renders the size as "name (value+suffix)" when a magnitude is known.
func (s Size) Label() string {
	if s.Value == "" || s.Unit == "" {
		return s.SizeName
	}
	return s.SizeName + " (" + s.Value + s.Unit.Suffix() + ")"
}

// Clone returns a copy of s that does not share DisplayOrder.
func (s Size) Clone() Size {
	if s.DisplayOrder != nil {
		order := *s.DisplayOrder
		s.DisplayOrder = &order
	}
	return s
}

// Draft returns the editable fields of s.
func (s Size) Draft() SizeDraft {
	d := SizeDraft{
		SizeName:    s.SizeName,
		Description: s.Description,
		Value:       s.Value,
		Unit:        s.Unit,
		Status:      s.Status,
	}
	if s.DisplayOrder != nil {
		d.DisplayOrder = strconv.Itoa(*s.DisplayOrder)
	}
	return d
}

// SizeDraft holds a size as typed by a user. DisplayOrder is the raw input and
// may be blank, in which case the server assigns the next free position.
type SizeDraft struct {
	SizeName     string `json:"sizeName" validate:"notblank,trimmax=50"`
	Description  string `json:"description" validate:"max=500"`
	Value        string `json:"value" validate:"max=20"`
	Unit         Unit   `json:"unit" validate:"omitempty,size_unit"`
	DisplayOrder string `json:"displayOrder" validate:"omitempty,display_order"`
	Status       bool   `json:"status"`
}

// SizeRequest is the wire body for create and update.
type SizeRequest struct {
	SizeName     string `json:"sizeName"`
	Description  string `json:"description"`
	Value        string `json:"value"`
	Unit         Unit   `json:"unit,omitempty"`
	DisplayOrder *int   `json:"displayOrder"`
	Status       bool   `json:"status"`
}

// Request converts a validated draft to its wire form.
func (d SizeDraft) Request() SizeRequest {
	req := SizeRequest{
		SizeName:    d.SizeName,
		Description: d.Description,
		Value:       d.Value,
		Unit:        d.Unit,
		Status:      d.Status,
	}
	if order, err := strconv.Atoi(strings.TrimSpace(d.DisplayOrder)); err == nil {
		req.DisplayOrder = &order
	}
	return req
}
