package codec

var (
	// SNAPSHOT_PACKER is used for packing snapshots into binary stores
	SNAPSHOT_PACKER Packer = MessagePackPacker{}
)

// Packer is used to pack and unpack snapshot data
type Packer interface {
	PackMsg(msg interface{}, buf []byte) ([]byte, error)
	UnpackMsg(data []byte, msg interface{}) error
}
