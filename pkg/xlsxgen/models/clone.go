package models

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// deepClone returns a structural copy of src sharing no pointers with it.
// It only fails for types holding channels or funcs, which no model type
// does, so a failure is a programming error.
func deepClone[T any](src T) T {
	var dst T
	if err := deepcopy.Copy(&dst, src); err != nil {
		panic(fmt.Sprintf("models: deep copy of %T: %v", src, err))
	}
	return dst
}
