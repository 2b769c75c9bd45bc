package dto

import "hotelinfo/models"

type PhotoDto struct {
	ID          uint   `json:"id"`
	URL         string `json:"url"`
	CityID      *uint  `json:"cityId,omitempty"`
	HotelID     *uint  `json:"hotelId,omitempty"`
	RoomID      *uint  `json:"roomId,omitempty"`
	RoomClassID *uint  `json:"roomClassId,omitempty"`
}

type PhotoForCreation struct {
	URL string `json:"url" binding:"required,max=500,url"`
}

type PhotoForUpdate struct {
	URL string `json:"url" binding:"required,max=500,url"`
}

func ToPhotoDto(p models.Photo) PhotoDto {
	return PhotoDto{
		ID:          p.ID,
		URL:         p.URL,
		CityID:      p.CityID,
		HotelID:     p.HotelID,
		RoomID:      p.RoomID,
		RoomClassID: p.RoomClassID,
	}
}

func ToPhotoDtoList(photos []models.Photo) []PhotoDto {
	out := make([]PhotoDto, 0, len(photos))
	for _, p := range photos {
		out = append(out, ToPhotoDto(p))
	}
	return out
}

func ToPhotoForUpdate(p models.Photo) PhotoForUpdate {
	return PhotoForUpdate{URL: p.URL}
}
