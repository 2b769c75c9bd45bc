package dto

import "hotelinfo/models"

type HotelDto struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	HotelType        int       `json:"hotelType"`
	StarRating       int       `json:"starRating"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	CityID           uint      `json:"cityId"`
	ThumbnailImageID *uint     `json:"thumbnailImageId"`
	Rooms            []RoomDto `json:"rooms"`
}

type HotelWithoutRooms struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	HotelType        int     `json:"hotelType"`
	StarRating       int     `json:"starRating"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	CityID           uint    `json:"cityId"`
	ThumbnailImageID *uint   `json:"thumbnailImageId"`
}

type HotelForCreation struct {
	Name        string            `json:"name" binding:"required,max=50"`
	Description string            `json:"description" binding:"max=500"`
	HotelType   int               `json:"hotelType" binding:"hoteltype"`
	StarRating  int               `json:"starRating" binding:"gte=0,lte=5"`
	Latitude    float64           `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude   float64           `json:"longitude" binding:"gte=-180,lte=180"`
	Rooms       []RoomForCreation `json:"rooms" binding:"omitempty,dive"`
}

type HotelForUpdate struct {
	Name             string  `json:"name" binding:"required,max=50"`
	Description      string  `json:"description" binding:"max=500"`
	HotelType        int     `json:"hotelType" binding:"hoteltype"`
	StarRating       int     `json:"starRating" binding:"gte=0,lte=5"`
	Latitude         float64 `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude        float64 `json:"longitude" binding:"gte=-180,lte=180"`
	ThumbnailImageID *uint   `json:"thumbnailImageId"`
}

func ToHotelDto(h models.Hotel) HotelDto {
	rooms := make([]RoomDto, 0, len(h.Rooms))
	for _, r := range h.Rooms {
		rooms = append(rooms, ToRoomDto(r))
	}
	w := ToHotelWithoutRooms(h)
	return HotelDto{
		ID:               w.ID,
		Name:             w.Name,
		Description:      w.Description,
		HotelType:        w.HotelType,
		StarRating:       w.StarRating,
		Latitude:         w.Latitude,
		Longitude:        w.Longitude,
		CityID:           w.CityID,
		ThumbnailImageID: w.ThumbnailImageID,
		Rooms:            rooms,
	}
}

func ToHotelWithoutRooms(h models.Hotel) HotelWithoutRooms {
	return HotelWithoutRooms{
		ID:               h.ID,
		Name:             h.Name,
		Description:      h.Description,
		HotelType:        h.HotelType,
		StarRating:       h.StarRating,
		Latitude:         h.Latitude,
		Longitude:        h.Longitude,
		CityID:           h.CityID,
		ThumbnailImageID: h.ThumbnailImageID,
	}
}

func ToHotelWithoutRoomsList(hotels []models.Hotel) []HotelWithoutRooms {
	out := make([]HotelWithoutRooms, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, ToHotelWithoutRooms(h))
	}
	return out
}

func (in HotelForCreation) ToModel() models.Hotel {
	hotel := models.Hotel{
		Name:        in.Name,
		Description: in.Description,
		HotelType:   in.HotelType,
		StarRating:  in.StarRating,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
	}
	for _, r := range in.Rooms {
		hotel.Rooms = append(hotel.Rooms, r.ToModel())
	}
	return hotel
}

func ToHotelForUpdate(h models.Hotel) HotelForUpdate {
	return HotelForUpdate{
		Name:             h.Name,
		Description:      h.Description,
		HotelType:        h.HotelType,
		StarRating:       h.StarRating,
		Latitude:         h.Latitude,
		Longitude:        h.Longitude,
		ThumbnailImageID: h.ThumbnailImageID,
	}
}

func (in HotelForUpdate) ApplyTo(h *models.Hotel) {
	h.Name = in.Name
	h.Description = in.Description
	h.HotelType = in.HotelType
	h.StarRating = in.StarRating
	h.Latitude = in.Latitude
	h.Longitude = in.Longitude
	h.ThumbnailImageID = in.ThumbnailImageID
}
