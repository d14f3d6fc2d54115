package symspell

// SuggestionStage is a scratch accumulator for (delete-hash, word) pairs
// collected while bulk-loading a dictionary. Staging avoids touching the
// permanent DeleteIndex map on every CreateDictionaryEntry call; CommitTo
// folds everything gathered so far into it in one pass.
type SuggestionStage struct {
	deletes map[uint32]stageEntry
	nodes   chunkArrayNode
}

// stageEntry is the head of a singly linked list of staged words for one
// delete-hash bucket, threaded through the shared nodes array.
type stageEntry struct {
	count int
	first int
}

// stageNode is one link in a staged bucket's word list.
type stageNode struct {
	word string
	next int
}

// NewSuggestionStage creates a new SuggestionStage sized for roughly
// initialCapacity unique delete-hashes.
func NewSuggestionStage(initialCapacity int) *SuggestionStage {
	return &SuggestionStage{
		deletes: make(map[uint32]stageEntry, initialCapacity),
		nodes:   newChunkArrayNode(initialCapacity * 2),
	}
}

// DeleteCount returns the count of unique staged delete-hashes.
func (ss *SuggestionStage) DeleteCount() int {
	return len(ss.deletes)
}

// NodeCount returns the total count of all staged (hash, word) pairs.
func (ss *SuggestionStage) NodeCount() int {
	return ss.nodes.Count()
}

// Clear discards all staged data.
func (ss *SuggestionStage) Clear() {
	ss.deletes = make(map[uint32]stageEntry)
	ss.nodes.Clear()
}

// Add stages a (deleteHash, word) pair.
func (ss *SuggestionStage) Add(deleteHash uint32, word string) {
	entry, found := ss.deletes[deleteHash]
	if !found {
		entry = stageEntry{count: 0, first: -1}
	}
	next := entry.first
	entry.count++
	entry.first = ss.nodes.Count()
	ss.deletes[deleteHash] = entry
	ss.nodes.Add(stageNode{word: word, next: next})
}

// CommitTo appends every staged (hash, word) pair to the permanent
// DeleteIndex, creating buckets as needed. Order within a bucket is
// insertion order of the commit and carries no semantic meaning.
func (ss *SuggestionStage) CommitTo(permanentDeletes map[uint32][]string) {
	for key, entry := range ss.deletes {
		words := make([]string, entry.count)
		i := entry.count - 1
		next := entry.first
		for next >= 0 {
			node := ss.nodes.Get(next)
			words[i] = node.word
			next = node.next
			i--
		}
		permanentDeletes[key] = append(permanentDeletes[key], words...)
	}
}

// chunkArrayNode is a growable list of stageNode elements optimized for
// amortized O(1) appends without reallocating already-written chunks.
type chunkArrayNode struct {
	values [][]stageNode
	count  int
}

const (
	chunkSize = 4096
	divShift  = 12
)

// newChunkArrayNode creates a chunkArrayNode with room for initialCapacity
// elements.
func newChunkArrayNode(initialCapacity int) chunkArrayNode {
	chunks := (initialCapacity + chunkSize - 1) / chunkSize
	if chunks < 1 {
		chunks = 1
	}
	values := make([][]stageNode, chunks)
	for i := range values {
		values[i] = make([]stageNode, chunkSize)
	}
	return chunkArrayNode{
		values: values,
		count:  0,
	}
}

// Add appends a stageNode and returns its index.
func (ca *chunkArrayNode) Add(value stageNode) int {
	if ca.count == ca.capacity() {
		newValues := make([][]stageNode, len(ca.values)+1)
		copy(newValues, ca.values)
		newValues[len(ca.values)] = make([]stageNode, chunkSize)
		ca.values = newValues
	}
	row := ca.row(ca.count)
	col := ca.col(ca.count)
	ca.values[row][col] = value
	ca.count++
	return ca.count - 1
}

// Count returns the number of stageNodes held.
func (ca *chunkArrayNode) Count() int {
	return ca.count
}

// Get retrieves a stageNode by index.
func (ca *chunkArrayNode) Get(index int) stageNode {
	row := ca.row(index)
	col := ca.col(index)
	return ca.values[row][col]
}

// Clear resets the chunkArrayNode without releasing its chunks.
func (ca *chunkArrayNode) Clear() {
	ca.count = 0
}

func (ca *chunkArrayNode) capacity() int {
	return len(ca.values) * chunkSize
}

func (ca *chunkArrayNode) row(index int) int {
	return index >> divShift
}

func (ca *chunkArrayNode) col(index int) int {
	return index & (chunkSize - 1)
}
