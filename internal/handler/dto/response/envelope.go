package response

import (
	"fmt"

	"github.com/jinzhu/copier"
)

type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

func OK[T any](data T, msg string) Envelope[T] {
	return Envelope[T]{Success: true, Data: data, Message: msg}
}

// copyFields maps same-named fields; a failure here is a programming error
// in the DTO definitions, so it panics and surfaces as a 500.
func copyFields(dst, src any) {
	if err := copier.Copy(dst, src); err != nil {
		panic(fmt.Sprintf("response mapping %T -> %T: %v", src, dst, err))
	}
}
