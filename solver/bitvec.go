package solver

import "math/bits"

// Bitvec is a fixed-size bit set. Set is safe to call from several
// goroutines as long as they write to disjoint 64-bit words.
type Bitvec struct {
	Words []uint64
	Size  int
}

func NewBitvec(size int) *Bitvec {
	return &Bitvec{
		Words: make([]uint64, (size+63)/64),
		Size:  size,
	}
}

func (bv *Bitvec) Set(index int) {
	bv.Words[index/64] |= 1 << (index % 64)
}

func (bv *Bitvec) Get(index int) bool {
	return bv.Words[index/64]&(1<<(index%64)) != 0
}

func (bv *Bitvec) Count() int {
	n := 0
	for _, w := range bv.Words {
		n += bits.OnesCount64(w)
	}
	return n
}
