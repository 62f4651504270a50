// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader carries hex(HMAC-SHA256(body, hash key)) on signed requests.
const HashHeader = "HashSHA256"

// hasherPool holds HMAC-SHA256 instances keyed with the server hash key.
// Must be initialized via InitHasherPool before Hash is called.
var hasherPool sync.Pool

// InitHasherPool initializes the pool of HMAC-SHA256 hashers used by [Hash].
//
//	utils.InitHasherPool(cfg.App.HashKey)
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes HMAC-SHA256 over data with a hasher from the pool.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// VerifyHash reports whether hexSignature is the pooled HMAC of data. The
// comparison is constant time; a signature that is not valid hex never
// matches.
func VerifyHash(data []byte, hexSignature string) bool {
	signature, err := hex.DecodeString(hexSignature)
	if err != nil {
		return false
	}
	return hmac.Equal(Hash(data), signature)
}

// HashString computes hex(HMAC-SHA256(data, hashKey)) without the pool. The
// client uses it to sign outgoing bodies.
func HashString(data []byte, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}
