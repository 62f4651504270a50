// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "encoding/base64"

// ProveKnowledge computes the value the client sends to the server to prove
// it knows the password: Argon2id over the master key, salted with the
// plaintext password, with [ProofParams]. The result is standard base64.
func ProveKnowledge(masterKey []byte, password string) string {
	sum := deriveArgon2id(masterKey, []byte(password), ProofParams)
	return base64.StdEncoding.EncodeToString(sum)
}
