//go:build !cre2 || !cgo

package cre2

import (
	"github.com/coregx/cre2/internal/abi"
	"github.com/coregx/cre2/internal/native"
)

func defaultEngine() abi.Engine {
	return native.New(nil)
}
