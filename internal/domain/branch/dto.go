package branch

type CreateBranchInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	PhoneNumber string `json:"phone_number" validate:"max=50"`
	AddressID   int64  `json:"address_id" validate:"required,gt=0"`
}

type CreateAddressInput struct {
	Latitude    *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	FullAddress string   `json:"full_address" validate:"required,max=500"`
}
