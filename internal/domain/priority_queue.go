package domain

import m "gridpath.dev/pkg/gridpath/internal/model"

// PriorityQueueItem is a heap entry. Sequence records insertion order and
// breaks ties between equal keys.
type PriorityQueueItem struct {
	Cell     m.Cell
	Key      int
	Sequence uint64
}

// PriorityQueue implements heap.Interface as a min-heap on (Key, Sequence).
type PriorityQueue []*PriorityQueueItem

func (queue PriorityQueue) Len() int { return len(queue) }

func (queue PriorityQueue) Less(i, j int) bool {
	if queue[i].Key != queue[j].Key {
		return queue[i].Key < queue[j].Key
	}

	return queue[i].Sequence < queue[j].Sequence
}

func (queue PriorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
}

func (queue *PriorityQueue) Push(x any) {
	*queue = append(*queue, x.(*PriorityQueueItem))
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]

	return item
}
