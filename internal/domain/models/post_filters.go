package model

type PostFilters struct {
	TagID  *int64
	Limit  *int
	Offset *int
}
