package snapshotstoragefilesystem

import (
	"path/filepath"

	"encoding/base64"
	"os"

	"strings"

	"github.com/coolhome/coolhome/engine/chlog"
	"github.com/coolhome/coolhome/engine/codec"
	"github.com/coolhome/coolhome/engine/consts"
	. "github.com/coolhome/coolhome/engine/storage/storage_common"
	"github.com/pkg/errors"
)

var (
	dataPacker = codec.JSONPacker{}
)

type fileSystemSnapshotStorage struct {
	directory string
}

func getFileName(typeName string, slot string) string {
	return typeName + "$" + base64.URLEncoding.EncodeToString([]byte(slot))
}

func (ss *fileSystemSnapshotStorage) getFilePath(typeName string, slot string) string {
	return filepath.Join(ss.directory, getFileName(typeName, slot))
}

func (ss *fileSystemSnapshotStorage) Write(typeName string, slot string, data interface{}) error {
	saveFile := ss.getFilePath(typeName, slot)
	dataBytes, err := dataPacker.PackMsg(data, nil)
	if err != nil {
		return errors.Wrap(err, "pack snapshot")
	}

	if consts.DEBUG_SAVE_LOAD {
		chlog.Debugf("Saving to file %s: %s", saveFile, string(dataBytes))
	}
	// write to a temp file, then rename over the previous snapshot
	tmpFile := saveFile + ".tmp"
	if err := os.WriteFile(tmpFile, dataBytes, 0644); err != nil {
		return errors.Wrap(err, "write snapshot")
	}
	return errors.Wrap(os.Rename(tmpFile, saveFile), "replace snapshot")
}

func (ss *fileSystemSnapshotStorage) Read(typeName string, slot string) (interface{}, error) {
	saveFile := ss.getFilePath(typeName, slot)
	dataBytes, err := os.ReadFile(saveFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "read snapshot")
	}

	var data interface{}
	if err = dataPacker.UnpackMsg(dataBytes, &data); err != nil {
		return nil, errors.Wrapf(err, "unpack snapshot %s", saveFile)
	}
	return data, nil
}

func (ss *fileSystemSnapshotStorage) Exists(typeName string, slot string) (exists bool, err error) {
	_, err = os.Stat(ss.getFilePath(typeName, slot))
	if err == nil {
		return true, nil
	} else if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (ss *fileSystemSnapshotStorage) List(typeName string) ([]string, error) {
	prefix := typeName + "$"
	pat := filepath.Join(ss.directory, prefix+"*")
	files, err := filepath.Glob(pat)
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(files))
	prefixLen := len(prefix)
	for _, fpath := range files {
		_, fn := filepath.Split(fpath)
		if !strings.HasPrefix(fn, prefix) || strings.HasSuffix(fn, ".tmp") {
			continue
		}
		slotBytes, err := base64.URLEncoding.DecodeString(fn[prefixLen:])
		if err != nil {
			chlog.TraceError("fail to parse file %s", fpath)
			continue
		}

		res = append(res, string(slotBytes))
	}
	return res, nil
}

func (ss *fileSystemSnapshotStorage) Close() {
	// need to do nothing
}

func (ss *fileSystemSnapshotStorage) IsEOF(err error) bool {
	return false
}

// OpenDirectory opens a directory as snapshot storage, creating it if needed
func OpenDirectory(directory string) (SnapshotStorage, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return nil, errors.Wrap(err, "create storage directory")
	}

	return &fileSystemSnapshotStorage{
		directory: directory,
	}, nil
}
