package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// UserID is the name of a person who referred one or more restaurants.
// Referrer fields in the upstream database are free text, so the ID is
// the trimmed display name itself.
type UserID string

func (x UserID) String() string {
	return string(x)
}

func (x UserID) Validate() error {
	if x == EmptyUserID {
		return goerr.New("empty user ID")
	}
	return nil
}

const (
	EmptyUserID UserID = ""
)

// RestaurantName identifies a restaurant. Names are unique in the
// upstream database; duplicate names collapse into a single entity.
type RestaurantName string

func (x RestaurantName) String() string {
	return string(x)
}

func (x RestaurantName) Validate() error {
	if x == EmptyRestaurantName {
		return goerr.New("empty restaurant name")
	}
	return nil
}

const (
	EmptyRestaurantName RestaurantName = ""
)
