/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// keyedBufSize is the number of keystream bytes produced per refill.
const keyedBufSize = 512

// KeyedSource is a deterministic rand.Source. Its values are read from
// the xsalsa20 keystream determined by a 32 byte key and a 64 bit seed,
// so the same key and seed always yield the same sequence of draws.
//
// The 24 byte nonce holds the seed in bytes 0-7 and the index of the
// current buffer in bytes 8-15. The key is never modified.
type KeyedSource struct {
	key   [32]byte
	seed  uint64
	block uint64
	buf   [keyedBufSize]byte
	pos   int
}

// NewKeyedSource returns a KeyedSource for the given key. The key is
// copied.
func NewKeyedSource(key *[32]byte) *KeyedSource {
	s := &KeyedSource{key: *key}
	s.pos = keyedBufSize
	return s
}

// Uint64 returns the next 8 bytes of the keystream.
func (s *KeyedSource) Uint64() uint64 {
	if s.pos+8 > keyedBufSize {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v
}

// Seed restarts the keystream under the same key with the given seed.
func (s *KeyedSource) Seed(seed uint64) {
	s.seed = seed
	s.block = 0
	s.pos = keyedBufSize
}

func (s *KeyedSource) refill() {
	var in [keyedBufSize]byte // input is initialized to zeros
	nonce := make([]byte, 24)
	binary.LittleEndian.PutUint64(nonce[0:8], s.seed)
	binary.LittleEndian.PutUint64(nonce[8:16], s.block)

	salsa20.XORKeyStream(s.buf[:], in[:], nonce, &s.key)
	s.block++
	s.pos = 0
}
