package snapshotstoragemongodb

import (
	"io"

	"github.com/coolhome/coolhome/engine/chlog"
	"github.com/coolhome/coolhome/engine/storage/storage_common"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	_DEFAULT_DB_NAME = "coolhome"
)

type mongoDBSnapshotStorage struct {
	db *mgo.Database
}

// OpenMongoDB opens mongodb as snapshot storage
func OpenMongoDB(url string, dbname string) (storagecommon.SnapshotStorage, error) {
	chlog.Debugf("Connecting MongoDB ...")
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, err
	}

	session.SetMode(mgo.Monotonic, true)
	if dbname == "" {
		// if db is not specified, use default
		dbname = _DEFAULT_DB_NAME
	}
	return &mongoDBSnapshotStorage{
		db: session.DB(dbname),
	}, nil
}

func (ss *mongoDBSnapshotStorage) Write(typeName string, slot string, data interface{}) error {
	col := ss.getCollection(typeName)
	_, err := col.UpsertId(slot, bson.M{
		"data": data,
	})
	return err
}

func (ss *mongoDBSnapshotStorage) Read(typeName string, slot string) (interface{}, error) {
	col := ss.getCollection(typeName)
	var doc bson.M
	err := col.FindId(slot).One(&doc)
	if err == mgo.ErrNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return convertM(doc["data"]), nil
}

// convertM turns every bson.M at any depth into a plain map[string]interface{}
func convertM(v interface{}) interface{} {
	switch iv := v.(type) {
	case bson.M:
		return convertM(map[string]interface{}(iv))
	case map[string]interface{}:
		for k, elem := range iv {
			iv[k] = convertM(elem)
		}
		return iv
	case []interface{}:
		for i, elem := range iv {
			iv[i] = convertM(elem)
		}
		return iv
	}
	return v
}

func (ss *mongoDBSnapshotStorage) getCollection(typeName string) *mgo.Collection {
	return ss.db.C(typeName)
}

func (ss *mongoDBSnapshotStorage) List(typeName string) ([]string, error) {
	col := ss.getCollection(typeName)
	var docs []bson.M
	err := col.Find(nil).Select(bson.M{"_id": 1}).All(&docs)
	if err != nil {
		return nil, err
	}

	slots := make([]string, 0, len(docs))
	for _, doc := range docs {
		if slot, ok := doc["_id"].(string); ok {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

func (ss *mongoDBSnapshotStorage) Exists(typeName string, slot string) (bool, error) {
	n, err := ss.getCollection(typeName).FindId(slot).Count()
	return n > 0, err
}

func (ss *mongoDBSnapshotStorage) Close() {
	ss.db.Session.Close()
}

func (ss *mongoDBSnapshotStorage) IsEOF(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}
