package errno

import (
	"errors"
)

var (
	ErrMealNotFound     = errors.New("meal not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrFavoriteNotFound = errors.New("favorite food not found")
	ErrProductNotFound  = errors.New("product not found")
)
