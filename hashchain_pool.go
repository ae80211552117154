// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

import "sync"

// hashChainPool is a pool of match finders. Each one holds about 288 KiB of tables.
var hashChainPool = sync.Pool{
	New: func() any {
		return &hashChain{}
	},
}

// acquireHashChain acquires a match finder from the pool and resets it for src.
func acquireHashChain(src []byte) *hashChain {
	chain := hashChainPool.Get().(*hashChain)
	chain.reset(src)
	return chain
}

// releaseHashChain releases a match finder to the pool.
func releaseHashChain(chain *hashChain) {
	if chain == nil {
		return
	}

	chain.src = nil
	hashChainPool.Put(chain)
}
