package codec

import (
	"bytes"
	"encoding/json"
)

// JSONPacker packs and unpacks data in indented JSON format, for human readable stores
type JSONPacker struct{}

// PackMsg packs data to bytes of JSON format
func (jp JSONPacker) PackMsg(msg interface{}, buf []byte) ([]byte, error) {
	buffer := bytes.NewBuffer(buf)
	jsonEncoder := json.NewEncoder(buffer)
	jsonEncoder.SetIndent("", "\t")
	err := jsonEncoder.Encode(msg)
	if err != nil {
		return buf, err
	}
	buf = buffer.Bytes()
	return buf[:len(buf)-1], nil // encoder always put '\n' at the end, we trim it
}

// UnpackMsg unpacks bytes of JSON format to data
func (jp JSONPacker) UnpackMsg(data []byte, msg interface{}) error {
	return json.Unmarshal(data, msg)
}
