package dto

import "hotelinfo/models"

type CityDto struct {
	ID               uint                `json:"id"`
	Name             string              `json:"name"`
	Description      string              `json:"description"`
	ThumbnailImageID *uint               `json:"thumbnailImageId"`
	Hotels           []HotelWithoutRooms `json:"hotels"`
}

type CityWithoutHotels struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	ThumbnailImageID *uint  `json:"thumbnailImageId"`
}

type CityForCreation struct {
	Name        string             `json:"name" binding:"required,max=50"`
	Description string             `json:"description" binding:"required,max=500"`
	Hotels      []HotelForCreation `json:"hotels" binding:"omitempty,dive"`
}

type CityForUpdate struct {
	Name             string `json:"name" binding:"required,max=50"`
	Description      string `json:"description" binding:"required,max=500"`
	ThumbnailImageID *uint  `json:"thumbnailImageId"`
}

func ToCityDto(c models.City) CityDto {
	hotels := make([]HotelWithoutRooms, 0, len(c.Hotels))
	for _, h := range c.Hotels {
		hotels = append(hotels, ToHotelWithoutRooms(h))
	}
	return CityDto{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		ThumbnailImageID: c.ThumbnailImageID,
		Hotels:           hotels,
	}
}

func ToCityWithoutHotels(c models.City) CityWithoutHotels {
	return CityWithoutHotels{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		ThumbnailImageID: c.ThumbnailImageID,
	}
}

func ToCityWithoutHotelsList(cities []models.City) []CityWithoutHotels {
	out := make([]CityWithoutHotels, 0, len(cities))
	for _, c := range cities {
		out = append(out, ToCityWithoutHotels(c))
	}
	return out
}

func (in CityForCreation) ToModel() models.City {
	city := models.City{Name: in.Name, Description: in.Description}
	for _, h := range in.Hotels {
		city.Hotels = append(city.Hotels, h.ToModel())
	}
	return city
}

func ToCityForUpdate(c models.City) CityForUpdate {
	return CityForUpdate{
		Name:             c.Name,
		Description:      c.Description,
		ThumbnailImageID: c.ThumbnailImageID,
	}
}

func (in CityForUpdate) ApplyTo(c *models.City) {
	c.Name = in.Name
	c.Description = in.Description
	c.ThumbnailImageID = in.ThumbnailImageID
}
