package models

// Planet represents a world of the Star Wars universe.
type Planet struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"type:varchar(250);not null"`
	Climate    string `json:"climate" gorm:"type:varchar(250);not null"`
	Population int64  `json:"population" gorm:"not null"`
}

// PlanetResponse is the serialized form of a Planet row.
type PlanetResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Climate    string `json:"climate"`
	Population int64  `json:"population"`
}

func (p *Planet) Serialize() PlanetResponse {
	return PlanetResponse{
		ID:         p.ID,
		Name:       p.Name,
		Climate:    p.Climate,
		Population: p.Population,
	}
}
