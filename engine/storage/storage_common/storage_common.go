package storagecommon

// SnapshotStorage defines the interface of snapshot storage backends
//
// Snapshots are addressed by (typeName, slot). Read returns nil data and nil error
// for a slot that was never written.
type SnapshotStorage interface {
	List(typeName string) ([]string, error)
	Write(typeName string, slot string, data interface{}) error
	Read(typeName string, slot string) (interface{}, error)
	Exists(typeName string, slot string) (bool, error)
	Close()
	IsEOF(err error) bool
}
