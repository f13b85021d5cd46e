package models

// Favorite links a user to a liked planet or person.
// Exactly one of PlanetID and PeopleID is set by the API, but the table does not enforce it,
// and none of the referenced ids are checked for existence.
type Favorite struct {
	ID       uint  `json:"id" gorm:"primaryKey"`
	UserID   uint  `json:"user_id" gorm:"not null;index"`
	PlanetID *uint `json:"planet_id" gorm:"index"`
	PeopleID *uint `json:"people_id" gorm:"index"`
}

// FavoriteResponse is the serialized form of a Favorite row.
// The foreign keys are exposed as raw ids; an unset key is null.
type FavoriteResponse struct {
	ID       uint  `json:"id"`
	UserID   uint  `json:"user_id"`
	PlanetID *uint `json:"planet_id"`
	PeopleID *uint `json:"people_id"`
}

func (f *Favorite) Serialize() FavoriteResponse {
	return FavoriteResponse{
		ID:       f.ID,
		UserID:   f.UserID,
		PlanetID: f.PlanetID,
		PeopleID: f.PeopleID,
	}
}

