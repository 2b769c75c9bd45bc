package dto

// PageQuery is bound from ?pageNumber=&pageSize=
type PageQuery struct {
	PageNumber int `form:"pageNumber"`
	PageSize   int `form:"pageSize"`
}

// ListQuery adds the name and free-text filters shared by city and hotel lists
type ListQuery struct {
	Name        string `form:"name"`
	SearchQuery string `form:"searchQuery"`
	PageQuery
}
