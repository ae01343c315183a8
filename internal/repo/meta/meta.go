package meta

import (
	"fmt"

	"github.com/keshon/svcs/internal/state"
)

// MetaContext holds the history log and the username.
type MetaContext struct {
	State state.Store
}

// NewMeta returns a MetaContext on top of st.
func NewMeta(st state.Store) (*MetaContext, error) {
	if st == nil {
		return nil, fmt.Errorf("nil state store provided")
	}
	return &MetaContext{State: st}, nil
}
