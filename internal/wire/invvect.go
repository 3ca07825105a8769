package wire

import "fmt"

// MaxInvPerMsg bounds the declared vector count of inv, getdata and
// notfound payloads before allocation.
const MaxInvPerMsg = 50000

// InvType names what an inventory vector refers to.
type InvType uint32

const (
	InvTypeError         InvType = 0
	InvTypeTx            InvType = 1
	InvTypeBlock         InvType = 2
	InvTypeFilteredBlock InvType = 3
)

func (t InvType) String() string {
	switch t {
	case InvTypeError:
		return "ERROR"
	case InvTypeTx:
		return "MSG_TX"
	case InvTypeBlock:
		return "MSG_BLOCK"
	case InvTypeFilteredBlock:
		return "MSG_FILTERED_BLOCK"
	default:
		return fmt.Sprintf("InvType(%d)", uint32(t))
	}
}

// InvVect advertises or requests one object by type and hash.
type InvVect struct {
	Type InvType
	Hash Hash
}
