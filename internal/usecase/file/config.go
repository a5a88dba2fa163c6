package file

import "time"

// DownloadURLTTL is the validity window of issued download links: 259200
// seconds, i.e. 72 hours.
const DownloadURLTTL = 259200 * time.Second

// ObjectKey builds the store key for a file, namespaced by its owner.
func ObjectKey(ownerID, fileName string) string {
	return ownerID + "/" + fileName
}
