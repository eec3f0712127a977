package branch

import "time"

type Address struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Latitude    float64   `json:"latitude" gorm:"not null"`
	Longitude   float64   `json:"longitude" gorm:"not null"`
	FullAddress string    `json:"full_address" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Address) TableName() string {
	return "addresses"
}

// Branch is a shop location. Address is loaded together with the branch.
type Branch struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	AddressID   int64     `json:"address_id" gorm:"not null;uniqueIndex"`
	Address     *Address  `json:"address,omitempty" gorm:"foreignKey:AddressID"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Branch) TableName() string {
	return "branches"
}

// RankedBranch is a branch annotated with its distance score from a query origin.
type RankedBranch struct {
	Branch
	Distance float64 `json:"distance"`
}

type Coordinate struct {
	Latitude  float64
	Longitude float64
}
