package dto

import "hotelinfo/models"

type RoomDto struct {
	ID            uint     `json:"id"`
	RoomNumber    string   `json:"roomNumber"`
	Cost          *float64 `json:"cost"`
	EffectiveCost float64  `json:"effectiveCost"`
	HotelID       uint     `json:"hotelId"`
	RoomClassID   *uint    `json:"roomClassId"`
}

type RoomForCreation struct {
	RoomNumber string   `json:"roomNumber" binding:"required,max=50"`
	Cost       *float64 `json:"cost" binding:"omitempty,gte=0"`
}

type RoomForUpdate struct {
	RoomNumber string   `json:"roomNumber" binding:"required,max=50"`
	Cost       *float64 `json:"cost" binding:"omitempty,gte=0"`
}

func ToRoomDto(r models.Room) RoomDto {
	return RoomDto{
		ID:            r.ID,
		RoomNumber:    r.RoomNumber,
		Cost:          r.Cost,
		EffectiveCost: r.EffectiveCost(),
		HotelID:       r.HotelID,
		RoomClassID:   r.RoomClassID,
	}
}

func ToRoomDtoList(rooms []models.Room) []RoomDto {
	out := make([]RoomDto, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, ToRoomDto(r))
	}
	return out
}

func (in RoomForCreation) ToModel() models.Room {
	return models.Room{RoomNumber: in.RoomNumber, Cost: in.Cost}
}

func ToRoomForUpdate(r models.Room) RoomForUpdate {
	return RoomForUpdate{RoomNumber: r.RoomNumber, Cost: r.Cost}
}

func (in RoomForUpdate) ApplyTo(r *models.Room) {
	r.RoomNumber = in.RoomNumber
	r.Cost = in.Cost
}
