package prism

import "sync"

// cullIndices runs keep over fixed index chunks of n elements, one goroutine
// per worker, and concatenates the surviving indices in ascending order.
// Chunking by index keeps the output deterministic regardless of worker
// scheduling, which matters because the result feeds draw submission order.
func cullIndices(n, workersCount int, keep func(i int) bool) []int {
	workersCount = max(DEFAULT_WORKERS, workersCount)
	chunkSize := (n + workersCount - 1) / workersCount

	var wg sync.WaitGroup
	results := make([][]int, workersCount)

	for workerID := 0; workerID < workersCount; workerID++ {
		start := workerID * chunkSize
		end := min(start+chunkSize, n)
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(workerID, start, end int) {
			defer wg.Done()
			visible := make([]int, 0, end-start)
			for i := start; i < end; i++ {
				if keep(i) {
					visible = append(visible, i)
				}
			}
			results[workerID] = visible
		}(workerID, start, end)
	}
	wg.Wait()

	out := make([]int, 0, n)
	for _, visible := range results {
		out = append(out, visible...)
	}
	return out
}
