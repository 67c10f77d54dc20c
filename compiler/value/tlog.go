package value

import "tlog.app/go/tlog/tlwire"

func (x *Int) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	if x == nil {
		return e.AppendNil(b)
	}

	return e.AppendFormat(b, "%s", x)
}
