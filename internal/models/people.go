package models

// People represents a Star Wars character.
type People struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"type:varchar(250);not null"`
	BirthYear string `json:"birth_year" gorm:"type:varchar(50);not null"`
	Gender    string `json:"gender" gorm:"type:varchar(50);not null"`
}

// TableName keeps the plural the dataset uses.
func (People) TableName() string {
	return "people"
}

// PeopleResponse is the serialized form of a People row.
type PeopleResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	BirthYear string `json:"birth_year"`
	Gender    string `json:"gender"`
}

func (p *People) Serialize() PeopleResponse {
	return PeopleResponse{
		ID:        p.ID,
		Name:      p.Name,
		BirthYear: p.BirthYear,
		Gender:    p.Gender,
	}
}
