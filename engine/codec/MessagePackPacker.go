package codec

import (
	"bytes"

	"github.com/vmihailenco/msgpack"
)

// MessagePackPacker packs and unpacks data in MessagePack format
type MessagePackPacker struct{}

// PackMsg packs data to bytes in MessagePack format
func (mp MessagePackPacker) PackMsg(msg interface{}, buf []byte) ([]byte, error) {
	buffer := bytes.NewBuffer(buf)

	encoder := msgpack.NewEncoder(buffer)
	err := encoder.Encode(msg)
	if err != nil {
		return buf, err
	}
	buf = buffer.Bytes()
	return buf, nil
}

// UnpackMsg unpacks bytes in MessagePack format to data
func (mp MessagePackPacker) UnpackMsg(data []byte, msg interface{}) error {
	err := msgpack.Unmarshal(data, msg)
	return err
}
