// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package csr

import (
	"github.com/ezrec/rvcsr/internal"
)

// Default is the registry of the built-in catalogue.
var Default = NewRegistry(internal.IterSlicesConcat(
	unprivileged,
	supervisor,
	virtualSupervisor,
	hypervisor,
	machine,
	pmp,
	debug,
	vmem,
	instruction,
))

// Decode decodes raw as the register id of the default registry.
func Decode(id string, raw uint64) (*Register, error) {
	return Default.Decode(id, raw)
}
