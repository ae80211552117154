// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package main

import "sync"

// runPartitioned calls fn for every index in 0..n-1 on up to workers goroutines.
// Indices are split into contiguous ranges, one range per goroutine, so each worker
// touches neighbouring chunks. It returns the error of the lowest failing index.
func runPartitioned(n, workers int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}

	workers = max(1, min(workers, n))
	rangeSize := (n + workers - 1) / workers
	errs := make([]error, n)

	var wg sync.WaitGroup
	for start := 0; start < n; start += rangeSize {
		end := min(start+rangeSize, n)

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			for i := start; i < end; i++ {
				errs[i] = fn(i)
			}
		}(start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
