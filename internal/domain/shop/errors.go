package shop

import "errors"

var ErrShopNotFound = errors.New("shop not found")
