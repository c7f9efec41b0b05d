package repository

import "courier-network/internal/entities"

// AddressDB адрес хранится документом: JSONB в Postgres, вложенный документ в MongoDB.
type AddressDB struct {
	Street  string `json:"street,omitempty"  bson:"street,omitempty"`
	City    string `json:"city,omitempty"    bson:"city,omitempty"`
	State   string `json:"state,omitempty"   bson:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
}

func AddressToDomain(a AddressDB) entities.Address {
	return entities.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	}
}

func AddressFromDomain(a entities.Address) AddressDB {
	return AddressDB{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
	}
}
