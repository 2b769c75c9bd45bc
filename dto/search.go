package dto

type SearchQuery struct {
	Query string `form:"query"`
	PageQuery
}

type SearchResultDto struct {
	HotelID      uint     `json:"hotelId"`
	HotelName    string   `json:"hotelName"`
	HotelType    string   `json:"hotelType"`
	StarRating   int      `json:"starRating"`
	CityName     string   `json:"cityName"`
	RoomPrice    float64  `json:"roomPrice"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Amenities    []string `json:"amenities"`
	Score        int      `json:"score"`
}

type FilterAmenityDto struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
