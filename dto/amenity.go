package dto

import "hotelinfo/models"

// AmenityDto is shared by hotel and room amenities
type AmenityDto struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type AmenityForCreation struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description" binding:"max=500"`
}

type AmenityForUpdate struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description" binding:"max=500"`
}

func ToHotelAmenityDto(a models.HotelAmenity) AmenityDto {
	return AmenityDto{ID: a.ID, Name: a.Name, Description: a.Description}
}

func ToHotelAmenityDtoList(list []models.HotelAmenity) []AmenityDto {
	out := make([]AmenityDto, 0, len(list))
	for _, a := range list {
		out = append(out, ToHotelAmenityDto(a))
	}
	return out
}

func ToRoomAmenityDto(a models.RoomAmenity) AmenityDto {
	return AmenityDto{ID: a.ID, Name: a.Name, Description: a.Description}
}

func ToRoomAmenityDtoList(list []models.RoomAmenity) []AmenityDto {
	out := make([]AmenityDto, 0, len(list))
	for _, a := range list {
		out = append(out, ToRoomAmenityDto(a))
	}
	return out
}

func (in AmenityForCreation) ToHotelAmenity() models.HotelAmenity {
	return models.HotelAmenity{Name: in.Name, Description: in.Description}
}

func (in AmenityForCreation) ToRoomAmenity() models.RoomAmenity {
	return models.RoomAmenity{Name: in.Name, Description: in.Description}
}

func ToAmenityForUpdate(name, description string) AmenityForUpdate {
	return AmenityForUpdate{Name: name, Description: description}
}
