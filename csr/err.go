package csr

import (
	"github.com/ezrec/rvcsr/translate"
)

var f = translate.From

// ErrUnknown is an identifier that matches no name or address.
type ErrUnknown string

func (err ErrUnknown) Error() string {
	return f("'%v' is not a known CSR", string(err))
}

// ErrUnimplemented is a catalogued register without a decoder.
type ErrUnimplemented string

func (err ErrUnimplemented) Error() string {
	return f("'%v' is not (yet) supported", string(err))
}

// ErrCatalogue is the panic value for an inconsistent register catalogue.
type ErrCatalogue struct {
	Name   string
	Reason string
}

func (err ErrCatalogue) Error() string {
	return f("catalogue entry '%v': %v", err.Name, err.Reason)
}
