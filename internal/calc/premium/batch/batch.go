package batch

import (
	"fmt"
	"sync"

	diagram "Camber/internal/calc/diagram"
)

type DiagramBatchInput struct {
	Items []diagram.Input `json:"items"`
}

type DiagramBatchResult struct {
	Results []diagram.Result `json:"results"`
}

// CalculateDiagrams evaluates the items concurrently. The engine is a pure
// function of its input, so each item runs on its own goroutine with no
// coordination; results stay in input order. The first failing item (by
// index) fails the batch.
func CalculateDiagrams(in DiagramBatchInput) (DiagramBatchResult, error) {
	if len(in.Items) == 0 {
		return DiagramBatchResult{}, fmt.Errorf("no items")
	}
	for i, item := range in.Items {
		if err := diagram.CheckLimits(item); err != nil {
			return DiagramBatchResult{}, fmt.Errorf("item %d: %w", i+1, err)
		}
	}

	results := make([]diagram.Result, len(in.Items))
	errs := make([]error, len(in.Items))
	var wg sync.WaitGroup
	for i, item := range in.Items {
		wg.Add(1)
		go func(i int, item diagram.Input) {
			defer wg.Done()
			results[i], errs[i] = diagram.Calculate(item)
		}(i, item)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return DiagramBatchResult{}, fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	return DiagramBatchResult{Results: results}, nil
}
