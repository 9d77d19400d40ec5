package gateway

import (
	"encoding/json"
	"errors"
	"fmt"

	dom "example.com/sector17-directory/internal/domain/product"
	domshop "example.com/sector17-directory/internal/domain/shop"
)

// Result is the envelope every catalog operation answers with, whichever
// backend served it.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
}

// Ack is the envelope of operations that return no data.
type Ack = Result[any]

func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func Fail[T any](msg string) Result[T] {
	return Result[T]{Success: false, Error: msg}
}

type wireResult struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Error   string `json:"error,omitempty"`
}

// MarshalJSON writes a failure envelope with a null data field whatever T is.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	w := wireResult{Success: r.Success, Error: r.Error}
	if r.Success {
		w.Data = r.Data
	}
	return json.Marshal(w)
}

// ErrFailure marks a failure envelope surfaced as a Go error.
var ErrFailure = errors.New("catalog operation failed")

// Value returns the payload of a successful result. A failure envelope
// becomes an error wrapping ErrFailure and carrying the envelope's message.
func (r Result[T]) Value() (T, error) {
	if !r.Success {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrFailure, r.Error)
	}
	return r.Data, nil
}

// ShopDetails is the payload of GetShopByID. Shop is nil when the id is
// unknown; that is still a successful lookup.
type ShopDetails struct {
	Shop     *domshop.Shop `json:"shop,omitempty"`
	Products []dom.Product `json:"products"`
}
