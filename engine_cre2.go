//go:build cre2 && cgo

package cre2

import (
	"github.com/coregx/cre2/internal/abi"
	"github.com/coregx/cre2/internal/libcre2"
)

func defaultEngine() abi.Engine {
	return libcre2.New()
}
