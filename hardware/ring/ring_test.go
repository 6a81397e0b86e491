package ring_test

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/jetsetilly/wheelwriter/hardware/ring"
	"github.com/jetsetilly/wheelwriter/test"
)

func TestOrder(t *testing.T) {
	b := ring.New[uint8](16, false)
	test.ExpectEquality(t, b.Available(), false)
	test.ExpectEquality(t, b.Cap(), 16)

	for i := range 10 {
		test.ExpectSuccess(t, b.Push(uint8(i)))
	}
	test.ExpectEquality(t, b.Len(), 10)

	for i := range 10 {
		v, ok := b.Get()
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, v, uint8(i))
	}

	_, ok := b.Get()
	test.ExpectFailure(t, ok)
}

func TestWrapAround(t *testing.T) {
	b := ring.New[uint16](8, false)

	// many times the capacity so that the free running indices wrap the
	// storage repeatedly
	for i := range 100 {
		test.DemandSuccess(t, b.Push(uint16(i)))
		test.DemandSuccess(t, b.Push(uint16(i+1000)))
		v, _ := b.Get()
		test.ExpectEquality(t, v, uint16(i))
		v, _ = b.Get()
		test.ExpectEquality(t, v, uint16(i+1000))
	}
	test.ExpectEquality(t, b.Overflows(), 0)
}

func TestOverflowRefused(t *testing.T) {
	b := ring.New[uint8](4, false)
	for i := range 4 {
		test.ExpectSuccess(t, b.Push(uint8(i)))
	}

	err := b.Push(99)
	test.ExpectEquality(t, errors.Is(err, ring.ErrFull), true)
	test.ExpectEquality(t, b.Overflows(), 1)
	test.ExpectEquality(t, b.Len(), 4)

	// oldest values are intact
	for i := range 4 {
		v, _ := b.Get()
		test.ExpectEquality(t, v, uint8(i))
	}
}

func TestOverflowCompatible(t *testing.T) {
	b := ring.New[uint8](4, true)
	for i := range 6 {
		test.ExpectSuccess(t, b.Push(uint8(i)))
	}
	test.ExpectEquality(t, b.Overflows(), 2)
	test.ExpectEquality(t, b.Len(), 4)

	// the most recent values survive
	for i := 2; i < 6; i++ {
		v, _ := b.Get()
		test.ExpectEquality(t, v, uint8(i))
	}
}

func TestFlushAndPeek(t *testing.T) {
	b := ring.New[uint8](4, false)
	b.Push(1)
	b.Push(2)

	v, ok := b.Peek()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(1))
	test.ExpectEquality(t, b.Len(), 2)

	b.Flush()
	test.ExpectEquality(t, b.Available(), false)
}

func TestConcurrent(t *testing.T) {
	const count = 2000
	b := ring.New[int](16, false)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < count; {
			if b.Push(i) == nil {
				i++
			} else {
				runtime.Gosched()
			}
		}
	}()

	var next int
	for next < count {
		if v, ok := b.Get(); ok {
			if !test.ExpectEquality(t, v, next) {
				t.FailNow()
			}
			next++
		} else {
			runtime.Gosched()
		}
	}
	wg.Wait()
}

func TestCapacity(t *testing.T) {
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	_ = ring.New[uint8](12, false)
}
