package domain

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// Short ids are the first 8 hex characters of an MD5 digest over a
// fixed key. 8 hex chars is ~32 bits, so collisions are possible;
// callers get a uniqueness violation rather than silent reuse.
func deriveID(key string) string {
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])[:8]
}

func ProjectID(namespace, name string) string {
	return deriveID(fmt.Sprintf("%s/%s", namespace, name))
}

func MergeRequestID(projectID, title string) string {
	return deriveID(fmt.Sprintf("%s/%s", projectID, title))
}

// ReviewID collides when the same reviewer reviews the same merge
// request twice; the store rejects the second insert.
func ReviewID(mrID, reviewer string) string {
	return deriveID(fmt.Sprintf("%s/%s", mrID, reviewer))
}

func PipelineID(projectID, sha string) string {
	return deriveID(fmt.Sprintf("%s/%s", projectID, sha))
}
