package openrtb2

import (
	"encoding/json"

	"github.com/adscope/openrtb"
)

// Regs contains any legal, governmental, or industry regulations that apply
// to the request. The COPPA flag signals whether or not the request falls
// under the United States Federal Trade Commission's regulations for the
// United States Children's Online Privacy Protection Act ("COPPA").
type Regs struct {
	// COPPA is a flag indicating if this request is subject to the COPPA
	// regulations established by the USA FTC, where 0 = no, 1 = yes.
	COPPA *openrtb.IntBool `json:"coppa,omitempty"`

	// Ext is a placeholder for exchange-specific extensions to OpenRTB.
	Ext json.RawMessage `json:"ext,omitempty"`
}
