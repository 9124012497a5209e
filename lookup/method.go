package lookup

import (
	"fmt"
	"strings"
)

// Method selects which service(s) the Resolver asks.
type Method string

const (
	MethodMyVariant Method = "myvariant"
	MethodEnsembl   Method = "ensembl"
	// MethodAuto asks MyVariant.info first and falls back to Ensembl.
	MethodAuto Method = "auto"
)

func (m Method) Valid() bool {
	switch m {
	case MethodMyVariant, MethodEnsembl, MethodAuto:
		return true
	}

	return false
}

func ParseMethod(name string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(name)))
	if !m.Valid() {
		return m, fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, name)
	}

	return m, nil
}
