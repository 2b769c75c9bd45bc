package dto

import "hotelinfo/models"

type RoomClassDto struct {
	ID           uint    `json:"id"`
	StandardCost float64 `json:"standardCost"`
	Description  string  `json:"description"`
}

type RoomClassForCreation struct {
	StandardCost float64 `json:"standardCost" binding:"gte=0"`
	Description  string  `json:"description" binding:"max=500"`
}

type RoomClassForUpdate struct {
	StandardCost float64 `json:"standardCost" binding:"gte=0"`
	Description  string  `json:"description" binding:"max=500"`
}

func ToRoomClassDto(rc models.RoomClass) RoomClassDto {
	return RoomClassDto{ID: rc.ID, StandardCost: rc.StandardCost, Description: rc.Description}
}

func ToRoomClassDtoList(classes []models.RoomClass) []RoomClassDto {
	out := make([]RoomClassDto, 0, len(classes))
	for _, rc := range classes {
		out = append(out, ToRoomClassDto(rc))
	}
	return out
}

func (in RoomClassForCreation) ToModel() models.RoomClass {
	return models.RoomClass{StandardCost: in.StandardCost, Description: in.Description}
}

func ToRoomClassForUpdate(rc models.RoomClass) RoomClassForUpdate {
	return RoomClassForUpdate{StandardCost: rc.StandardCost, Description: rc.Description}
}

func (in RoomClassForUpdate) ApplyTo(rc *models.RoomClass) {
	rc.StandardCost = in.StandardCost
	rc.Description = in.Description
}
